package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/silverbeer/swimcuttimes.com/internal/domain"
)

func NewRouter(h *Handlers) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/auth/invitations/accept", h.AcceptInvitation).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(h.Authenticate)

	coach := func(fn http.HandlerFunc) http.HandlerFunc { return h.require(fn, domain.RoleCoach) }
	admin := func(fn http.HandlerFunc) http.HandlerFunc { return h.require(fn) }

	api.HandleFunc("/auth/me", h.Me).Methods("GET")
	api.HandleFunc("/auth/me", h.UpdateMe).Methods("PATCH")
	api.HandleFunc("/auth/invitations", h.CreateInvitation).Methods("POST")
	api.HandleFunc("/auth/invitations", h.ListInvitations).Methods("GET")
	api.HandleFunc("/auth/invitations/{id}/revoke", h.RevokeInvitation).Methods("POST")
	api.HandleFunc("/auth/users", admin(h.ListUsers)).Methods("GET")
	api.HandleFunc("/auth/users/{id}/role", admin(h.ChangeUserRole)).Methods("PATCH")

	api.HandleFunc("/swimmers", coach(h.CreateSwimmer)).Methods("POST")
	api.HandleFunc("/swimmers", h.SearchSwimmers).Methods("GET")
	api.HandleFunc("/swimmers/{id}", h.GetSwimmer).Methods("GET")
	api.HandleFunc("/swimmers/{id}", coach(h.UpdateSwimmer)).Methods("PATCH")
	api.HandleFunc("/swimmers/{id}", admin(h.DeleteSwimmer)).Methods("DELETE")
	api.HandleFunc("/swimmers/{id}/teams", h.ListSwimmerTeams).Methods("GET")
	api.HandleFunc("/swimmers/{id}/teams", coach(h.AssignTeam)).Methods("POST")
	api.HandleFunc("/swimmers/{id}/teams/end", coach(h.EndMembership)).Methods("POST")
	api.HandleFunc("/swimmers/{id}/best-times", h.BestTimes).Methods("GET")
	api.HandleFunc("/swimmers/{id}/qualifications", h.Qualifications).Methods("GET")

	api.HandleFunc("/teams", coach(h.CreateTeam)).Methods("POST")
	api.HandleFunc("/teams", h.SearchTeams).Methods("GET")
	api.HandleFunc("/teams/{id}", h.GetTeam).Methods("GET")
	api.HandleFunc("/teams/{id}", coach(h.UpdateTeam)).Methods("PATCH")
	api.HandleFunc("/teams/{id}", admin(h.DeleteTeam)).Methods("DELETE")

	api.HandleFunc("/meets", coach(h.CreateMeet)).Methods("POST")
	api.HandleFunc("/meets", h.SearchMeets).Methods("GET")
	api.HandleFunc("/meets/{id}", h.GetMeet).Methods("GET")
	api.HandleFunc("/meets/{id}", coach(h.UpdateMeet)).Methods("PATCH")
	api.HandleFunc("/meets/{id}", admin(h.DeleteMeet)).Methods("DELETE")
	api.HandleFunc("/meets/{id}/teams", h.ListMeetTeams).Methods("GET")
	api.HandleFunc("/meets/{id}/teams", coach(h.AddMeetTeam)).Methods("POST")
	api.HandleFunc("/meets/{id}/teams/{teamID}", coach(h.RemoveMeetTeam)).Methods("DELETE")

	api.HandleFunc("/events", h.ListEvents).Methods("GET")
	api.HandleFunc("/events", coach(h.CreateEvent)).Methods("POST")

	api.HandleFunc("/standards", admin(h.CreateStandard)).Methods("POST")
	api.HandleFunc("/standards", h.SearchStandards).Methods("GET")
	api.HandleFunc("/standards/{id}", h.GetStandard).Methods("GET")
	api.HandleFunc("/standards/{id}", admin(h.UpdateStandard)).Methods("PATCH")
	api.HandleFunc("/standards/{id}", admin(h.DeleteStandard)).Methods("DELETE")

	api.HandleFunc("/times", coach(h.CreateSwimTime)).Methods("POST")
	api.HandleFunc("/times", h.SearchSwimTimes).Methods("GET")
	api.HandleFunc("/times/{id}", h.GetSwimTime).Methods("GET")
	api.HandleFunc("/times/{id}", coach(h.UpdateSwimTime)).Methods("PATCH")
	api.HandleFunc("/times/{id}", admin(h.DeleteSwimTime)).Methods("DELETE")
	api.HandleFunc("/times/{id}/standards", h.EvaluateSwimTime).Methods("GET")

	api.HandleFunc("/suits", coach(h.CreateSuitModel)).Methods("POST")
	api.HandleFunc("/suits", h.ListSuitModels).Methods("GET")
	api.HandleFunc("/suits/{id}", h.GetSuitModel).Methods("GET")
	api.HandleFunc("/suits/{id}", coach(h.UpdateSuitModel)).Methods("PATCH")
	api.HandleFunc("/suits/{id}", admin(h.DeleteSuitModel)).Methods("DELETE")

	ownSuit := func(fn http.HandlerFunc) http.HandlerFunc {
		return h.require(fn, domain.RoleSwimmer, domain.RoleCoach)
	}
	api.HandleFunc("/swimmers/{id}/suits", h.ListSwimmerSuits).Methods("GET")
	api.HandleFunc("/swimmers/{id}/suits", ownSuit(h.CreateSwimmerSuit)).Methods("POST")
	api.HandleFunc("/swimmers/{id}/suits/{suitID}", h.GetSwimmerSuit).Methods("GET")
	api.HandleFunc("/swimmers/{id}/suits/{suitID}", admin(h.DeleteSwimmerSuit)).Methods("DELETE")
	api.HandleFunc("/swimmers/{id}/suits/{suitID}/wear", ownSuit(h.WearSuit)).Methods("POST")
	api.HandleFunc("/swimmers/{id}/suits/{suitID}/race", ownSuit(h.RaceSuit)).Methods("POST")
	api.HandleFunc("/swimmers/{id}/suits/{suitID}/retire", ownSuit(h.RetireSuit)).Methods("POST")

	api.HandleFunc("/follows", h.ListFollows).Methods("GET")
	api.HandleFunc("/follows/request", h.require(h.RequestFollow, domain.RoleFan)).Methods("POST")
	api.HandleFunc("/follows/invite", h.require(h.InviteFollow, domain.RoleSwimmer)).Methods("POST")
	api.HandleFunc("/follows/{id}/respond", h.RespondFollow).Methods("POST")

	return r
}
