// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rolegraph/internal/core/domain"
)

// Upstream is the paginated service-inventory API.
//
// Every List call takes the cursor returned by the previous page; an empty
// cursor requests the first page. A page with an empty Next is the last one.
//
//go:generate go run go.uber.org/mock/mockgen -source=upstream.go -destination=mocks/mock_upstream.go -package=mocks
type Upstream interface {
	// ListRoles returns one page of role names.
	ListRoles(ctx context.Context, cursor string) (domain.RolePage, error)

	// ListServiceEntries returns one page of service entries with their declared backends.
	ListServiceEntries(ctx context.Context, cursor string) (domain.ServiceEntryPage, error)

	// ListRules returns one page of the ingress firewall rules of role.
	ListRules(ctx context.Context, role, cursor string) (domain.RulePage, error)
}
