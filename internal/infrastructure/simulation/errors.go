package simulation

import (
	"encoding/json"
	"strings"

	"github.com/emergency-response-dashboard/internal/domain"
)

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type detailItem struct {
	Msg string `json:"msg"`
}

// parseErrorDetail - первое сообщение из тела {"detail": ...}.
// detail может быть строкой или списком объектов {"msg": ...}.
func parseErrorDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return domain.FallbackErrorMessage
	}

	var text string
	if err := json.Unmarshal(eb.Detail, &text); err == nil {
		if strings.TrimSpace(text) != "" {
			return text
		}
		return domain.FallbackErrorMessage
	}

	var items []detailItem
	if err := json.Unmarshal(eb.Detail, &items); err == nil {
		for _, item := range items {
			if item.Msg != "" {
				return item.Msg
			}
		}
	}

	return domain.FallbackErrorMessage
}
