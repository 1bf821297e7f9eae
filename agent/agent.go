// Package agent provides a small Gemini-backed chat assistant that explains a
// smart-DCA suggestion and the state of the ledger in plain language.
//
// The assistant only ever comments on data the caller puts in its context; it
// never takes part in the selection itself, which stays deterministic.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.0-flash"

const systemInstruction = `You are the assistant of a personal dollar-cost-averaging tool.
The user invests a fixed amount every month into a small set of tickers; the
tool ranks them by momentum (a 0.2/0.3/0.5 blend of 1-, 3- and 6-month
trailing returns) and rotates away from any ticker bought 3 cycles in a row.
Explain suggestions and reports you are given. Never invent prices and never
give financial advice beyond describing what the tool computed.`

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Agent writing its output to w and reading user input from r.
func New(w io.Writer, r io.Reader) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session, seeding it with the report the session is about.
func (a *Agent) Start(ctx context.Context, client *genai.Client, report string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction + "\n\nCurrent report:\n" + report}},
		},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the assistant's text answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. Initial prompts, if
// any, are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, prompts ...string) error {
	fmt.Fprintln(a.w, "Welcome to sdca assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
