package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteRegister = RouteApiV1 + "/register"

	RouteUsers          = RouteApiV1 + "/users"
	RouteUser           = RouteUsers + "/:user_id"
	RouteUserSetRole    = RouteUser + "/set-role"
	RouteUserDeactivate = RouteUser + "/deactivate"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
