package inventory

import "encoding/json"

// pageMeta is the pagination block shared by every listing.
type pageMeta struct {
	Next *string `json:"next"`
}

type rolesResponse struct {
	Items []struct {
		Name string `json:"name"`
	} `json:"items"`
	Meta pageMeta `json:"meta"`
}

type serviceEntriesResponse struct {
	Items []serviceEntryDTO `json:"items"`
	Meta  pageMeta          `json:"meta"`
}

// serviceEntryDTO defers decoding of the configuration so one malformed
// entry does not fail the whole page.
type serviceEntryDTO struct {
	ServiceName          string          `json:"service_name"`
	ServiceConfiguration json.RawMessage `json:"service_configuration"`
}

type serviceConfigurationDTO struct {
	Backends *[]struct {
		ServiceName string `json:"service_name"`
	} `json:"backends"`
}

type rulesResponse struct {
	Items []struct {
		IngressRole string `json:"ingress_role"`
	} `json:"items"`
	Meta pageMeta `json:"meta"`
}
