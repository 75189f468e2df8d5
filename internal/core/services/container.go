package services

import (
	portsrepo "github.com/pingufin/fxdesk/internal/core/ports/repositories"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
)

// Container holds all the services and manages their dependencies. It replaces
// any notion of process-wide shared state: every consumer receives its
// collaborators explicitly, which keeps sessions independent and tests isolated.
type Container struct {
	Auth        portssvc.AuthSvcFacade
	Conversion  portssvc.ConversionSvcFacade
	RateVersion portssvc.RateVersionSvcFacade
	Transaction portssvc.TransactionSvcFacade
	User        portssvc.UserSvcFacade
}

// Repositories bundles the store contracts the services are built on.
type Repositories struct {
	RateVersions portsrepo.RateVersionRepositoryFacade
	Transactions portsrepo.TransactionRepositoryFacade
	Users        portsrepo.UserRepositoryFacade
}

// NewContainer creates a service container with properly initialized dependencies.
func NewContainer(repos Repositories) *Container {
	auth := NewAuthService()
	conversion := NewConversionService()
	rateVersion := NewRateVersionService(repos.RateVersions)

	return &Container{
		Auth:        auth,
		Conversion:  conversion,
		RateVersion: rateVersion,
		Transaction: NewTransactionService(repos.Transactions, rateVersion, conversion),
		User:        NewUserService(repos.Users, auth),
	}
}
