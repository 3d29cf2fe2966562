package uniqueid

//go:generate mockgen -source=api.go -destination=gen_GeneratorMock.go -package=uniqueid github.com/MarcGrol/taskqueue/uniqueid Generator

// Generator hands out identifiers for tasks and drains.
type Generator interface {
	Generate() string
}
