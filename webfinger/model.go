// Package webfinger declares the well-known discovery documents that travel
// next to the vocabulary: WebFinger and NodeInfo. These are strict JSON
// shapes with none of the JSON-LD looseness, so they marshal directly.
package webfinger

// WebFinger is a struct for a WebFinger response.
type WebFinger struct {
	Subject string          `json:"subject"`
	Aliases []string        `json:"aliases,omitempty"`
	Links   []WebFingerLink `json:"links"`
}

// WebFingerLink is a struct for the links field of a WebFinger response.
type WebFingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href"`
}

// WellKnown is a struct for a well-known nodeinfo pointer response.
type WellKnown struct {
	Links []WellKnownLink `json:"links"`
}

// WellKnownLink is a struct for the links field of a well-known response.
type WellKnownLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// NodeInfo is a struct for a NodeInfo response.
type NodeInfo struct {
	Version           string           `json:"version,omitempty"`
	Software          NodeInfoSoftware `json:"software,omitempty"`
	Protocols         []string         `json:"protocols,omitempty"`
	OpenRegistrations bool             `json:"openRegistrations,omitempty"`
	Metadata          NodeInfoMetadata `json:"metadata,omitempty"`
}

// NodeInfoSoftware is a struct for the software field of a NodeInfo response.
type NodeInfoSoftware struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// NodeInfoMetadata is a struct for the metadata field of a NodeInfo response.
type NodeInfoMetadata struct {
	NodeName        string `json:"nodeName,omitempty"`
	NodeDescription string `json:"nodeDescription,omitempty"`
	ThemeColor      string `json:"themeColor,omitempty"`
}
