package domain

import "time"

// Parameter is a stored runtime parameter. Secure parameters hold their
// value AES-GCM encrypted under the service master key; plain parameters
// hold it verbatim.
type Parameter struct {
	Name      string
	Value     string
	Secure    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
