package service

import "encoding/json"

// jsonCodec is a connect codec over plain encoding/json. It lets the handlers
// exchange the domain's JSON wire shapes directly, without generated schema
// code. The name "json" binds it to requests with an application/json
// content type.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
