package appconf

// Environment represents the operating environment of the application.
type Environment int

const (
	Test Environment = iota
	Development
	Production
)

// EnvFlagToEnvironment maps the value of the --env flag to an Environment.
func EnvFlagToEnvironment(env string) Environment {
	switch env {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
