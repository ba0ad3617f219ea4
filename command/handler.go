package command

// Handler receives the outcome of a run
// Implemented by the owning action; commands hold it without owning it
type Handler interface {
	// Name is used for diagnostics only
	Name() string

	// OnCommandSuccess and OnCommandFailed fire exactly once per completed run
	OnCommandSuccess()
	OnCommandFailed()

	// OnCommandRankResult fires at most once per run
	OnCommandRankResult(rank Rank)

	// OnCommandResponse carries command-specific payloads, any number of times
	OnCommandResponse(response any)
}

// NopHandler discards every notification
type NopHandler struct{}

func (NopHandler) Name() string { return "nop" }
func (NopHandler) OnCommandSuccess() {}
func (NopHandler) OnCommandFailed() {}
func (NopHandler) OnCommandRankResult(Rank) {}
func (NopHandler) OnCommandResponse(any) {}
