package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionReveal = "reveal"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildRevealCallback builds callback data for revealing the cow at index.
func buildRevealCallback(index int) string {
	return callbackData{
		Action: actionReveal,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}

// revealIndex extracts the cow index from reveal callback data.
func (cd callbackData) revealIndex() (int, bool) {
	if cd.Action != actionReveal || len(cd.Params) != 1 {
		return 0, false
	}
	index, err := strconv.Atoi(cd.Params[0])
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
