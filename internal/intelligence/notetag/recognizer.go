package notetag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// ---------------------------------------------------------------------------
// Recognizer: optional contextual company-name augmentation
// ---------------------------------------------------------------------------

// Mention is a labelled span proposed by the external recognizer.  Offsets
// are byte offsets into the text the recognizer was given.
type Mention struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Recognizer proposes additional candidate spans for company-name
// augmentation.  Absence or failure degrades silently to "no additional
// candidates"; it is never a fatal error for extraction.
type Recognizer interface {
	// Recognize returns labelled mentions found in text.  Callers filter the
	// result to organisation-like labels before turning mentions into
	// CompanyName candidates.
	Recognize(ctx context.Context, text string) ([]Mention, error)

	// Available reports whether the recognizer capability is live.  The probe
	// runs once at construction; call sites never branch on availability;
	// an unavailable recognizer is a no-op returning empty results.
	Available() bool
}

// RecognizerConfig selects and parameterises the recognizer variant.
type RecognizerConfig struct {
	// Enabled turns company-name augmentation on.  When false the tagger runs
	// in degraded mode with pattern matchers only.
	Enabled bool `mapstructure:"enabled"`

	// Endpoint is the base URL of the remote NER service.
	Endpoint string `mapstructure:"endpoint"`

	// Timeout bounds each recognize call.
	Timeout time.Duration `mapstructure:"timeout"`
}

// NewRecognizer selects the recognizer variant once, via a capability probe.
// When the capability is disabled, unconfigured, or the probe fails, the
// returned Recognizer is a no-op and the tagger operates in degraded mode.
func NewRecognizer(cfg RecognizerConfig, logger logging.Logger) Recognizer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return noopRecognizer{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	r := &httpRecognizer{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.Named("recognizer"),
	}
	if err := r.probe(); err != nil {
		logger.Warn("recognizer unavailable, running degraded",
			logging.String("endpoint", cfg.Endpoint), logging.Err(err))
		return noopRecognizer{}
	}
	return r
}

// ---------------------------------------------------------------------------
// noopRecognizer
// ---------------------------------------------------------------------------

type noopRecognizer struct{}

func (noopRecognizer) Recognize(context.Context, string) ([]Mention, error) { return nil, nil }
func (noopRecognizer) Available() bool                                      { return false }

// ---------------------------------------------------------------------------
// httpRecognizer: remote NER service client
// ---------------------------------------------------------------------------

// recognizeRequest is the wire request of the remote NER service.
type recognizeRequest struct {
	Text string `json:"text"`
}

// recognizeResponse is the wire response of the remote NER service.
type recognizeResponse struct {
	Entities []Mention `json:"entities"`
}

type httpRecognizer struct {
	endpoint string
	client   *http.Client
	logger   logging.Logger
}

func (r *httpRecognizer) Available() bool { return true }

// probe checks service liveness once at construction time.
func (r *httpRecognizer) probe() error {
	resp, err := r.client.Get(r.endpoint + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("probe returned status %d", resp.StatusCode)
	}
	return nil
}

func (r *httpRecognizer) Recognize(ctx context.Context, text string) ([]Mention, error) {
	body, err := json.Marshal(recognizeRequest{Text: text})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRecognizerFailed, "failed to encode recognize request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"/v1/recognize", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRecognizerFailed, "failed to build recognize request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRecognizerFailed, "recognize call failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, errors.Newf(errors.ErrCodeRecognizerFailed, "recognize call returned status %d", resp.StatusCode)
	}

	var out recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRecognizerFailed, "failed to decode recognize response")
	}
	return out.Entities, nil
}

// organizationLabels are the recognizer labels accepted for company-name
// augmentation.
var organizationLabels = map[string]bool{
	"ORG":          true,
	"ORGANIZATION": true,
}

// mentionsToSpans filters recognizer mentions to organisation-like results
// that carry a legal-entity suffix and converts them into CompanyName
// candidates.  Mentions with offsets outside text are dropped.
func mentionsToSpans(text string, mentions []Mention) []Span {
	var spans []Span
	for _, m := range mentions {
		if !organizationLabels[m.Label] {
			continue
		}
		if !hasLegalSuffix(m.Text) {
			continue
		}
		if s, ok := newSpan(text, m.Start, m.End, KindCompanyName); ok {
			spans = append(spans, s)
		}
	}
	return spans
}
