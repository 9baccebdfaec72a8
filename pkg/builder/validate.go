package builder

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

// ValidateURL checks the lexical well-formedness of a built URL: it must
// parse, carry a scheme and a hostname, have no empty domain label, no label
// starting or ending with '-', and the hostname must pass IDNA lookup rules.
func ValidateURL(raw string) error {
	if problem := urlProblem(raw); problem != "" {
		return errors.New(errors.ErrInvalidURL, problem).WithDetail("url", raw)
	}
	return nil
}

// IsValidURL is ValidateURL as a predicate
func IsValidURL(raw string) bool {
	return urlProblem(raw) == ""
}

func urlProblem(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "URL cannot be parsed"
	}
	if u.Scheme == "" {
		return "URL has no scheme"
	}

	host := u.Hostname()
	if host == "" {
		return "URL has no hostname"
	}

	for _, label := range strings.Split(host, ".") {
		switch {
		case label == "":
			return "hostname " + host + " has an empty label"
		case strings.HasPrefix(label, "-"):
			return "hostname label " + label + " starts with '-'"
		case strings.HasSuffix(label, "-"):
			return "hostname label " + label + " ends with '-'"
		}
	}

	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return "hostname " + host + " is not a valid domain name"
	}
	return ""
}
