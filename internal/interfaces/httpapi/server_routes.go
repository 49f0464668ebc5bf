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

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/session", handler.Login)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeagueOverview)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/ranking", handler.GetLeagueRanking)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/market", handler.GetLeagueMarket)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/squads", handler.ListLeagueSquads)
}

func registerManagerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/managers/{userID}/squad", handler.GetManagerSquad)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/managers/{userID}/lineup", handler.GetManagerLineup)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/managers/{userID}/performance", handler.GetManagerPerformance)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/managers/{userID}/dashboard", handler.GetManagerDashboard)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions/{competitionID}/table", handler.GetCompetitionTable)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/teams/{teamID}", handler.GetTeamProfile)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/matchdays", handler.GetMatchday)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeamIdentity)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats/players/{playerID}/seasons", handler.ListPlayerSeasonPoints)
	mux.HandleFunc("GET /v1/stats/players/{playerID}/seasons/{seasonID}/matchdays", handler.ListPlayerMatchdayPoints)
	mux.HandleFunc("GET /v1/stats/players/{playerID}/market-values", handler.ListPlayerMarketValues)
	mux.HandleFunc("GET /v1/stats/clubs/{clubID}/fixtures", handler.ListClubFixtures)
}
