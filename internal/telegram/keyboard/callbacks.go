package keyboard

import (
	"fmt"
	"strings"
)

// CallbackData represents parsed callback data
type CallbackData struct {
	Action string
	Value  string
}

// ParseCallback parses "action:value" callback data
func ParseCallback(data string) (*CallbackData, error) {
	action, value, ok := strings.Cut(data, ":")
	if !ok || action == "" {
		return nil, fmt.Errorf("invalid callback format: %s", data)
	}

	return &CallbackData{
		Action: action,
		Value:  value,
	}, nil
}

func EncodeCallback(action, value string) string {
	return action + ":" + value
}
