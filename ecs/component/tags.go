package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// KeyboardControlled marks entities driven by the input resolver.
type KeyboardControlled struct{}

var KeyboardControlledComponent = NewComponent[KeyboardControlled]()
