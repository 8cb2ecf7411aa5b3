// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// URLParts is a redirect URL decomposed into the query parameters understood
// by the auth backend's login and register pages.
//
// Port and Resources are optional. The empty string means the field is absent
// and it is never emitted as a query parameter.
type URLParts struct {
	// Prefix is the scheme without the colon ("http" or "https").
	Prefix string `json:"prefix"`

	// Host is the hostname without port.
	Host string `json:"host"`

	// Port is set only when the redirect URL names a non-default port.
	Port string `json:"port,omitempty"`

	// Resources is the URL path without its leading slash, with every "/"
	// replaced by ".". Absent for the root path.
	Resources string `json:"resources,omitempty"`
}

// HasPort reports whether the port is present.
func (p URLParts) HasPort() bool {
	return p.Port != ""
}

// HasResources reports whether the resources are present.
func (p URLParts) HasResources() bool {
	return p.Resources != ""
}
