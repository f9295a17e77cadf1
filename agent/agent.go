// Package agent runs an interactive AI analyst over a compact trade summary.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const prompt = "trades> "

const instruction = `You are a financial analyst assisting the owner of a
Korean brokerage account. The compact summary of their trading statement is
given below in JSON form. The "_schema" legend maps the row positions:
d=date, s=symbol, q=quantity, avgP=average price, sum=total amount. All
amounts are in the statement currency. Negative quantities are sells,
negative OTHERS amounts are outflows. Answer from the summary only and say
so when it does not carry the answer.`

// Analyst is the chat session bound to one compact summary.
type Analyst struct {
	w       io.Writer
	r       *bufio.Reader
	summary string
	chat    *genai.Chat
}

// New creates an Analyst over a summary in its compact JSON form. Output is
// written to w, user input read from r.
func New(w io.Writer, r io.Reader, summaryJSON string) *Analyst {
	return &Analyst{
		w:       w,
		r:       bufio.NewReader(r),
		summary: summaryJSON,
	}
}

// Start opens the Gemini chat with the summary embedded in the system
// instruction.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: instruction + "\n\n```json\n" + a.summary + "\n```"},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, cfg, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Run starts the interactive REPL session. Initial prompts are consumed
// before reading from the input; the session ends on "bye" or EOF.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to tts trading assist. Type 'bye' to exit.")

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
					return nil // clean exit on Ctrl+D
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
