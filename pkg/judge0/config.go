package judge0

// Default header field names used by stock Judge0 installations.
// Administrators can rename both, which is why they live in Config.
const (
	DefaultAuthenticationHeader = "X-Auth-Token"
	DefaultAuthorizationHeader  = "X-Auth-User"
)

// Config holds the per-client settings that are applied to every request.
//
// Config is a plain value: a Client takes its own copy at construction
// time, so mutating a Config afterwards never affects an existing Client.
// To reconfigure, build a new Config and bind it to a new Client.
type Config struct {
	// AuthenticationHeaderName is the header field carrying the API key.
	// Defaults to "X-Auth-Token" but instance administrators can change it.
	AuthenticationHeaderName string

	// AuthenticationToken is the API key, if the instance requires one.
	// Empty means no authentication header is sent.
	AuthenticationToken string

	// AuthorizationHeaderName is the header field carrying the
	// authorization token. Defaults to "X-Auth-User".
	AuthorizationHeaderName string

	// AuthorizationToken authorizes privileged calls such as listing all
	// submissions. Empty means no authorization header is sent.
	AuthorizationToken string

	// Base64Encoded tells the service that submission text fields are
	// base64 encoded. Echoed as the base64_encoded query parameter on
	// every submission-related call.
	Base64Encoded bool

	// Wait asks the service to block submission creation until the
	// submission reaches a terminal state instead of returning a bare
	// token immediately. The wait is performed remotely; this client
	// never polls. Note that wait=true does not scale well and some
	// instances disable it.
	Wait bool
}

// DefaultConfig returns the configuration of a stock Judge0 instance:
// default header names, no tokens, plain-text payloads, no waiting.
func DefaultConfig() Config {
	return Config{
		AuthenticationHeaderName: DefaultAuthenticationHeader,
		AuthorizationHeaderName:  DefaultAuthorizationHeader,
	}
}
