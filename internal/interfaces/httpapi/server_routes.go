package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/championships", handler.ListChampionships)
	mux.HandleFunc("GET /v1/championships/active", handler.GetActiveChampionship)
	mux.HandleFunc("GET /v1/championships/{championshipID}", handler.GetChampionship)
	mux.HandleFunc("GET /v1/championships/{championshipID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/championships/{championshipID}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/championships/{championshipID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/championships/{championshipID}/calendar", handler.ListCalendar)
	mux.HandleFunc("GET /v1/championships/{championshipID}/results", handler.ListResults)
	mux.HandleFunc("GET /v1/championships/{championshipID}/scorers", handler.ListScorers)
	mux.HandleFunc("GET /v1/championships/{championshipID}/cup", handler.GetCupBracket)
	mux.HandleFunc("GET /v1/championships/{championshipID}/overview", handler.GetOverview)
	mux.HandleFunc("GET /v1/matches/{matchID}/goals", handler.ListGoals)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, admin AdminVerifier) {
	adminRoute := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdmin(admin, fn))
	}

	adminRoute("POST /v1/admin/championships", handler.CreateChampionship)
	adminRoute("PUT /v1/admin/championships/{championshipID}", handler.UpdateChampionship)
	adminRoute("DELETE /v1/admin/championships/{championshipID}", handler.DeleteChampionship)

	adminRoute("POST /v1/admin/championships/{championshipID}/teams", handler.CreateTeam)
	adminRoute("PUT /v1/admin/teams/{teamID}", handler.UpdateTeam)
	adminRoute("DELETE /v1/admin/teams/{teamID}", handler.DeleteTeam)
	adminRoute("POST /v1/admin/teams/{teamID}/logo", handler.UploadTeamLogo)

	adminRoute("POST /v1/admin/championships/{championshipID}/matches", handler.CreateMatch)
	adminRoute("PUT /v1/admin/matches/{matchID}", handler.UpdateMatch)
	adminRoute("DELETE /v1/admin/matches/{matchID}", handler.DeleteMatch)

	adminRoute("POST /v1/admin/championships/{championshipID}/players", handler.CreatePlayer)
	adminRoute("PUT /v1/admin/players/{playerID}", handler.UpdatePlayer)
	adminRoute("DELETE /v1/admin/players/{playerID}", handler.DeletePlayer)

	adminRoute("POST /v1/admin/matches/{matchID}/goals", handler.AddGoal)
	adminRoute("DELETE /v1/admin/goals/{goalID}", handler.DeleteGoal)
}
