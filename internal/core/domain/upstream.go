package domain

// RolePage is one page of the role listing.
type RolePage struct {
	Roles []string
	// Next is the cursor of the following page, empty on the last page.
	Next string
}

// ServiceEntry names a role and the backend roles it declares.
type ServiceEntry struct {
	Role     string
	Backends []string
	// Malformed is set when the entry carried no usable backend list.
	Malformed bool
}

// ServiceEntryPage is one page of the service entry listing.
type ServiceEntryPage struct {
	Entries []ServiceEntry
	Next    string
}

// RulePage is one page of a role's ingress firewall rules.
type RulePage struct {
	// IngressRoles are the roles allowed to call the queried role.
	IngressRoles []string
	Next         string
}
