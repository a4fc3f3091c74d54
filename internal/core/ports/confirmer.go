package ports

// Decision is the outcome of a between-packages confirmation.
type Decision int

const (
	// DecisionContinue proceeds to the next package.
	DecisionContinue Decision = iota
	// DecisionQuit stops the run cleanly.
	DecisionQuit
	// DecisionInvalid stops the run because the response was not understood.
	DecisionInvalid
)

// Confirmer is the interactive pause point between packages in a
// multi-package run. Implementations outside tests read standard input.
//
//go:generate go run go.uber.org/mock/mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Continue asks whether to proceed with the named next package.
	Continue(next string) (Decision, error)
}
