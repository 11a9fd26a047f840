package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decimal цена, которую бэкенд отдает строкой ("150.00"), числом или null.
// Дробная часть сохраняется: парсится как float, а не как целое.
// NaN, бесконечности и отрицательные цены считаются нарушением контракта.
type decimal struct {
	Value float64
	Set   bool
}

func (d *decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = decimal{}
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*d = decimal{}
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %s: %v", string(data), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid decimal %s: not a finite number", string(data))
	}
	if v < 0 {
		return fmt.Errorf("invalid decimal %s: negative price", string(data))
	}
	*d = decimal{Value: v, Set: true}
	return nil
}

// stringList массив строк, который бэкенд отдает либо массивом,
// либо JSON-строкой с закодированным массивом ("[\"Pool\",\"Spa\"]").
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = stringList{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*l = stringList{}
			return nil
		}
		data = []byte(s)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("invalid string list: %v", err)
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

// flexString строковое поле, которое иногда приходит числом (номер заказа)
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid string value %s", string(data))
	}
	*s = flexString(n.String())
	return nil
}

// decodeList разбирает список как голый массив или как {"data": [...]}
func decodeList(body []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return err
		}
		if len(envelope.Data) == 0 {
			return fmt.Errorf("object without data field")
		}
		trimmed = envelope.Data
	}
	return json.Unmarshal(trimmed, v)
}

// decodeObject разбирает объект как есть или как {"data": {...}}
func decodeObject(body []byte, v interface{}) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && envelope.Data[0] == '{' {
		return json.Unmarshal(envelope.Data, v)
	}
	return json.Unmarshal(body, v)
}
