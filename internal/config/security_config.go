package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityUser                        // Verified ID token required
	SecurityAdmin                       // Verified ID token with ROLE_ADMIN
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Account routes - Public
	"auth.login":          SecurityPublic,
	"auth.password_reset": SecurityPublic,

	// Health - Public
	"health.check": SecurityPublic,

	// Enquiries - submission is public, reading is admin only
	"enquiries.create": SecurityPublic,
	"enquiries.list":   SecurityAdmin,

	// Services - catalog browse is for signed-in users, management is admin
	"services.list":   SecurityUser,
	"services.get":    SecurityUser,
	"services.create": SecurityAdmin,
	"services.update": SecurityAdmin,
	"services.toggle": SecurityAdmin,

	// Requests - own requests for users, fleet-wide operations for admin
	"requests.create": SecurityUser,
	"requests.mine":   SecurityUser,
	"requests.list":   SecurityAdmin,
	"requests.get":    SecurityAdmin,
	"requests.status": SecurityAdmin,
	"requests.delete": SecurityAdmin,

	// Profile
	"account.profile": SecurityUser,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown routes
	return SecurityAdmin
}
