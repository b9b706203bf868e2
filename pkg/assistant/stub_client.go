package assistant

import "context"

// StubClient is an in-memory Client for tests.
type StubClient struct {
	Response    string
	Err         error
	Prompts     []string
	SystemTexts []string
}

func NewStubClient() *StubClient {
	return &StubClient{}
}

func (c *StubClient) GenerateText(ctx context.Context, systemInstruction string, prompt string) (string, error) {
	c.SystemTexts = append(c.SystemTexts, systemInstruction)
	c.Prompts = append(c.Prompts, prompt)
	if c.Err != nil {
		return "", c.Err
	}
	return c.Response, nil
}

func (c *StubClient) Cleanup() {
	c.Response = ""
	c.Err = nil
	c.Prompts = nil
	c.SystemTexts = nil
}
