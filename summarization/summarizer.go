package summarization

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"go-healthwatch/types"
)

var log = logrus.WithField("prefix", "summarization")

const (
	DisabledMessage = "AI functionality is disabled. Please configure the API_KEY environment variable."
	ErrorMessage    = "An error occurred while communicating with the AI. Please check the console for more details."
)

const markdownInstruction = "Format your response using Markdown (e.g., headings, bold text, lists)."

// Summarizer asks a Generator for Markdown summaries. Its methods never fail:
// a missing generator yields DisabledMessage and any error yields
// ErrorMessage. Concurrent calls from the same control with the same prompt
// share one request.
type Summarizer struct {
	gen     Generator
	timeout time.Duration
	group   singleflight.Group
}

// New returns a Summarizer. A nil gen disables every call.
func New(gen Generator, timeout time.Duration) *Summarizer {
	return &Summarizer{gen: gen, timeout: timeout}
}

func (s *Summarizer) Enabled() bool {
	return s.gen != nil
}

func (s *Summarizer) SummarizeReports(ctx context.Context, reports []types.Report, lang types.Language) string {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		log.WithError(err).Error("Failed to encode reports for summary")
		return ErrorMessage
	}

	prompt := fmt.Sprintf(`Analyze the following community health worker reports and generate key insights.
Focus on:
1. Identifying potential disease clusters based on location and timing.
2. Highlighting locations with a high number of 'Pending' or 'Submitted' reports that need review.
3. Summarizing the overall status of reports across different cities.

%s
%s

Reports Data:
%s`, markdownInstruction, languageInstruction(lang), data)

	return s.run(ctx, "reports", prompt)
}

func (s *Summarizer) SummarizeChart(ctx context.Context, title string, payload any, lang types.Language) string {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.WithError(err).Errorf("Failed to encode chart %q for summary", title)
		return ErrorMessage
	}

	prompt := fmt.Sprintf(`Analyze the data for the chart titled %q and provide a concise summary.
Describe the main trend, any significant peaks or dips, and potential implications.

%s
%s

Chart Data:
%s`, title, markdownInstruction, languageInstruction(lang), data)

	return s.run(ctx, "chart:"+title, prompt)
}

func (s *Summarizer) Refine(ctx context.Context, text, instruction string, lang types.Language) string {
	prompt := fmt.Sprintf(`Based on the following instruction, refine the provided text.
Instruction: %q

%s
%s

Text to refine:
---
%s
---`, instruction, markdownInstruction, languageInstruction(lang), text)

	return s.run(ctx, "refine", prompt)
}

func languageInstruction(lang types.Language) string {
	if lang == types.Hindi {
		return "Respond in Hindi."
	}
	return "Respond in English."
}

func (s *Summarizer) run(ctx context.Context, control, prompt string) string {
	if s.gen == nil {
		return DisabledMessage
	}

	sum := sha256.Sum256([]byte(prompt))
	key := control + ":" + hex.EncodeToString(sum[:])

	ch := s.group.DoChan(key, func() (interface{}, error) {
		// Joined callers must not inherit the leader's cancellation.
		genCtx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			genCtx, cancel = context.WithTimeout(genCtx, s.timeout)
			defer cancel()
		}

		start := time.Now()
		text, err := s.gen.Generate(genCtx, prompt)
		if err != nil {
			log.WithError(err).Errorf("Error generating content for %s", control)
			return ErrorMessage, nil
		}
		log.Infof("Received %s summary in %s", control, time.Since(start).Round(time.Millisecond))
		return text, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			log.Debugf("Joined outstanding %s request", control)
		}
		return res.Val.(string)
	case <-ctx.Done():
		log.WithError(ctx.Err()).Warnf("Abandoned %s request", control)
		return ErrorMessage
	}
}
