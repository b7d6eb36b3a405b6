package domain

// Effect is the verdict carried by an authorizer policy statement.
type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

const (
	// PolicyVersion is the IAM policy language version.
	PolicyVersion = "2012-10-17"

	// PolicyAction is the only action the authorizer ever rules on.
	PolicyAction = "execute-api:Invoke"

	// DeniedPrincipalID is the placeholder principal used on every Deny so
	// the response never leaks whether a subject exists.
	DeniedPrincipalID = "user"
)

// Decision is the authorizer's verdict for a single request: who the caller
// is (if verified) and whether they may invoke the named resource.
type Decision struct {
	PrincipalID string
	Effect      Effect
	Resource    string
}

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool {
	return d.Effect == EffectAllow
}

// Allow builds an Allow decision for the verified subject.
func Allow(principalID, resource string) Decision {
	return Decision{
		PrincipalID: principalID,
		Effect:      EffectAllow,
		Resource:    resource,
	}
}

// Deny builds a Deny decision. The principal is always the fixed
// placeholder, never the subject from an unverified token.
func Deny(resource string) Decision {
	return Decision{
		PrincipalID: DeniedPrincipalID,
		Effect:      EffectDeny,
		Resource:    resource,
	}
}
