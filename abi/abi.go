package abi

import (
	"encoding/json"

	"tlog.app/go/errors"
)

type (
	Document struct {
		ABI []Entry `json:"abi"`
	}

	Entry struct {
		Type   string      `json:"type"`
		Name   string      `json:"name"`
		Inputs []Parameter `json:"inputs"`
	}

	Parameter struct {
		Name       string      `json:"name"`
		Type       string      `json:"type"`
		Components []Parameter `json:"components"`
	}
)

const Function = "function"

func Parse(data []byte) (*Document, error) {
	var d Document

	err := json.Unmarshal(data, &d)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}

	if d.ABI == nil {
		return nil, errors.New("no abi field")
	}

	return &d, nil
}

func (e Entry) IsFunction() bool { return e.Type == Function }
