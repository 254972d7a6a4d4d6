package router

import (
	"studio/internal/handlers/borrow"
	"studio/internal/handlers/classes"
	"studio/internal/handlers/reservation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Classes     classes.Handler
	Reservation reservation.Handler
	Borrow      borrow.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain at the root. The paths are part of the
// wire contract the studio frontends were built against, so there is no
// version prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Classes.Router(router)
	r.DomainHandlers.Reservation.Router(router)
	r.DomainHandlers.Borrow.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
