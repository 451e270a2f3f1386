package dictionary // import "github.com/Xunop/e-verse/internal/dictionary"

import (
	"context"
	"regexp"
	"strings"

	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"go.uber.org/zap"
)

var strongRegexp = regexp.MustCompile(`(?i)^([HG])(\d{1,4})$`)

// IsStrongNumber reports whether s looks like H1234 or G26.
func IsStrongNumber(s string) bool {
	return strongRegexp.MatchString(strings.TrimSpace(s))
}

// ParseStrongNumber normalises a Strong's number to an upper case prefix.
func ParseStrongNumber(s string) (string, bool) {
	m := strongRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]) + m[2], true
}

type Source interface {
	Define(ctx context.Context, dictionaryID, term string) ([]model.Definition, error)
}

type Service struct {
	source            Source
	net               provider.Connectivity
	defaultDictionary string
}

func NewService(source Source, net provider.Connectivity, defaultDictionary string) *Service {
	return &Service{source: source, net: net, defaultDictionary: defaultDictionary}
}

// Lookup never fails. Strong's numbers are normalised before the request and
// an empty dictionaryID selects the configured default.
func (s *Service) Lookup(ctx context.Context, term, dictionaryID string) []model.Definition {
	term = strings.TrimSpace(term)
	if term == "" || !s.net.Online() {
		return []model.Definition{}
	}
	if n, ok := ParseStrongNumber(term); ok {
		term = n
	}
	if dictionaryID == "" {
		dictionaryID = s.defaultDictionary
	}

	defs, err := s.source.Define(ctx, dictionaryID, term)
	if err != nil {
		log.Debug("Dictionary lookup failed", zap.String("term", term), zap.String("dictionary", dictionaryID), zap.Error(err))
		return []model.Definition{}
	}
	if defs == nil {
		return []model.Definition{}
	}
	return defs
}
