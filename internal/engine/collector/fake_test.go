package collector_test

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/rolegraph/internal/core/domain"
)

// fakeUpstream serves canned pages and can fail rule requests per role.
type fakeUpstream struct {
	mu sync.Mutex

	rolePages    []domain.RolePage
	rolesErr     error
	entryPages   []domain.ServiceEntryPage
	entryFailAt  int // index of the service entry page that fails, -1 for none
	rules        map[string][]domain.RulePage
	failRules    map[string]int // remaining failures per role, -1 fails forever
	blockRules   bool
	ruleCalls    map[string]int
	upstreamHits int
}

var errTransient = errors.New("connection reset by peer")

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		entryFailAt: -1,
		rules:       make(map[string][]domain.RulePage),
		failRules:   make(map[string]int),
		ruleCalls:   make(map[string]int),
	}
}

// pageIndex returns the page addressed by cursor, "" being the first.
func pageIndex(cursor string) int {
	if cursor == "" {
		return 0
	}
	n := 0
	for _, r := range cursor {
		n = n*10 + int(r-'0')
	}
	return n
}

func cursorFor(i, total int) string {
	if i+1 >= total {
		return ""
	}
	return string(rune('0' + i + 1))
}

func (f *fakeUpstream) ListRoles(_ context.Context, cursor string) (domain.RolePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upstreamHits++
	if f.rolesErr != nil {
		return domain.RolePage{}, f.rolesErr
	}
	if len(f.rolePages) == 0 {
		return domain.RolePage{}, nil
	}
	i := pageIndex(cursor)
	page := f.rolePages[i]
	page.Next = cursorFor(i, len(f.rolePages))
	return page, nil
}

func (f *fakeUpstream) ListServiceEntries(_ context.Context, cursor string) (domain.ServiceEntryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upstreamHits++
	i := pageIndex(cursor)
	if i == f.entryFailAt {
		return domain.ServiceEntryPage{}, errTransient
	}
	if len(f.entryPages) == 0 {
		return domain.ServiceEntryPage{}, nil
	}
	page := f.entryPages[i]
	page.Next = cursorFor(i, len(f.entryPages))
	return page, nil
}

func (f *fakeUpstream) ListRules(ctx context.Context, role, cursor string) (domain.RulePage, error) {
	f.mu.Lock()
	f.upstreamHits++
	f.ruleCalls[role]++
	block := f.blockRules
	if n := f.failRules[role]; n != 0 && cursor == "" {
		if n > 0 {
			f.failRules[role] = n - 1
		}
		f.mu.Unlock()
		return domain.RulePage{}, errTransient
	}
	pages := f.rules[role]
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return domain.RulePage{}, ctx.Err()
	}
	if len(pages) == 0 {
		return domain.RulePage{}, nil
	}
	i := pageIndex(cursor)
	page := pages[i]
	page.Next = cursorFor(i, len(pages))
	return page, nil
}

func (f *fakeUpstream) hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upstreamHits
}

func (f *fakeUpstream) callsFor(role string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ruleCalls[role]
}
