package services

import (
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_desk_backend/internal/core/ports/services"
	"github.com/SscSPs/travel_desk_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Infrastructure that lives outside the repository provider (attachment store,
// metrics, analytics) is passed in as options.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extra ...ResidenceServiceOption) *portssvc.ServiceContainer {
	options := []ResidenceServiceOption{
		WithTransitionLog(repos.TransitionLog),
		WithRemarksLog(repos.RemarksLog),
		WithReferenceLookup(repos.ReferenceRepo),
		WithEligibilityEnforcement(cfg.EnforceEligibility),
		WithCollaboratorTimeout(cfg.CollaboratorTimeout),
	}
	options = append(options, extra...)

	return &portssvc.ServiceContainer{
		Residence: NewResidenceService(repos.ResidenceRepo, options...),
	}
}
