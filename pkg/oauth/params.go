package oauth

import (
	"net/url"
	"strings"
)

// EncodeRFC3986 percent-encodes s for use in a query string or a
// form-urlencoded body. Only the RFC 3986 unreserved characters
// (ALPHA, DIGIT, '-', '.', '_', '~') are left as-is; a space becomes %20.
func EncodeRFC3986(s string) string {
	// QueryEscape differs from RFC 3986 only in writing spaces as '+'.
	// A literal '+' is already escaped to %2B at this point.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// param is a single name/value pair.
type param struct {
	name  string
	value string
}

// params is an insertion-ordered parameter list. Setting an existing name
// replaces its value in place.
type params []param

func (p *params) set(name, value string) {
	for i := range *p {
		if (*p)[i].name == name {
			(*p)[i].value = value
			return
		}
	}
	*p = append(*p, param{name: name, value: value})
}

func (p params) get(name string) (string, bool) {
	for _, kv := range p {
		if kv.name == name {
			return kv.value, true
		}
	}
	return "", false
}

func (p params) encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeRFC3986(kv.name))
		b.WriteByte('=')
		b.WriteString(EncodeRFC3986(kv.value))
	}
	return b.String()
}

// TokenRequest is the payload of a token endpoint request. Parameters keep
// the order in which the builder added them.
type TokenRequest struct {
	params params
}

// GrantType returns the grant_type parameter.
func (r TokenRequest) GrantType() string {
	v, _ := r.params.get(ParamGrantType)
	return v
}

// Get returns the value of the named parameter and whether it is present.
func (r TokenRequest) Get(name string) (string, bool) {
	return r.params.get(name)
}

// Has reports whether the named parameter is present.
func (r TokenRequest) Has(name string) bool {
	_, ok := r.params.get(name)
	return ok
}

// Len returns the number of parameters.
func (r TokenRequest) Len() int {
	return len(r.params)
}

// Names returns the parameter names in insertion order.
func (r TokenRequest) Names() []string {
	names := make([]string, 0, len(r.params))
	for _, kv := range r.params {
		names = append(names, kv.name)
	}
	return names
}

// Values returns the parameters as url.Values.
func (r TokenRequest) Values() url.Values {
	v := make(url.Values, len(r.params))
	for _, kv := range r.params {
		v.Set(kv.name, kv.value)
	}
	return v
}

// Encode returns the application/x-www-form-urlencoded body, RFC 3986
// encoded, in insertion order.
func (r TokenRequest) Encode() string {
	return r.params.encode()
}
