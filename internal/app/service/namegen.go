package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"shiptracker/internal/app/ds"
)

// NameGeneratorService ходит во внешний API randommer.io за случайным
// именем корабля. Без ретраев и без кэша: каждый вызов — свежий запрос.
type NameGeneratorService struct {
	client *http.Client
	url    string
	apiKey string
}

func NewNameGeneratorService(url, apiKey string, timeout time.Duration) *NameGeneratorService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NameGeneratorService{
		client: &http.Client{Timeout: timeout},
		url:    url,
		apiKey: apiKey,
	}
}

// GenerateName возвращает одно сгенерированное имя. Любой транспортный
// сбой, не-2xx статус или пустой ответ превращаются в
// ds.ErrNameServiceUnavailable — сырые ошибки наружу не выходят.
func (s *NameGeneratorService) GenerateName(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url+"?nameType=surname&quantity=1", nil)
	if err != nil {
		return "", fmt.Errorf("build name request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("name generator request failed")
		return "", ds.ErrNameServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.Warnf("name generator returned status %d", resp.StatusCode)
		return "", ds.ErrNameServiceUnavailable
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		logrus.WithError(err).Warn("name generator returned malformed body")
		return "", ds.ErrNameServiceUnavailable
	}
	if len(names) == 0 {
		logrus.Warn("name generator returned empty result")
		return "", ds.ErrNameServiceUnavailable
	}
	return names[0], nil
}
