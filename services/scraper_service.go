package services

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rideready-api/models"
)

// ScraperService ingests technical bulletins from the configured external
// bulletin sources. Extraction is best effort: a source that fails to fetch
// or parse is logged and skipped, never fatal.
type ScraperService struct {
	db      *gorm.DB
	logger  *zap.Logger
	sources []string
	client  *http.Client
}

func NewScraperService(db *gorm.DB, logger *zap.Logger, sources []string) *ScraperService {
	return &ScraperService{
		db:      db,
		logger:  logger,
		sources: sources,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ScrapedBulletin is one raw entry pulled off a source page before it is
// turned into a TechnicalBulletin row.
type ScrapedBulletin struct {
	Title     string
	Content   string
	SourceURL string
}

// ScrapeAll fetches every configured source and inserts the bulletins not
// already present. Returns the number of new bulletins stored.
func (s *ScraperService) ScrapeAll(ctx context.Context) (int, error) {
	var categories []models.RideCategory
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		return 0, err
	}

	inserted := 0
	for _, source := range s.sources {
		entries, err := s.scrapeSource(ctx, source)
		if err != nil {
			s.logger.Warn("Bulletin source failed", zap.String("source", source), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			bulletin := s.buildBulletin(entry, categories)
			if s.isDuplicate(ctx, bulletin) {
				continue
			}
			if err := s.db.WithContext(ctx).Create(&bulletin).Error; err != nil {
				s.logger.Warn("Failed to store scraped bulletin",
					zap.String("title", bulletin.Title), zap.Error(err))
				continue
			}
			inserted++
		}
	}

	s.logger.Info("Bulletin scrape finished", zap.Int("new_bulletins", inserted))
	return inserted, nil
}

func (s *ScraperService) scrapeSource(ctx context.Context, sourceURL string) ([]ScrapedBulletin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "RideReady-BulletinScraper/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var entries []ScrapedBulletin
	seen := make(map[string]bool)

	// Bulletin listings vary between the two sources; try the common
	// article/listing shapes first and fall back to titled links.
	doc.Find("article, .safety-alert, .bulletin, li.notice").Each(func(i int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Find("h2, h3, .title, a").First().Text())
		body := strings.TrimSpace(sel.Text())
		if title == "" || seen[title] {
			return
		}
		seen[title] = true
		entries = append(entries, ScrapedBulletin{
			Title:     title,
			Content:   body,
			SourceURL: sourceURL,
		})
	})

	if len(entries) == 0 {
		doc.Find("a").Each(func(i int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if len(text) < 15 || seen[text] {
				return
			}
			if !strings.Contains(strings.ToLower(text), "bulletin") &&
				!strings.Contains(strings.ToLower(text), "alert") &&
				!strings.Contains(strings.ToLower(text), "notice") {
				return
			}
			seen[text] = true
			entries = append(entries, ScrapedBulletin{
				Title:     text,
				Content:   text,
				SourceURL: sourceURL,
			})
		})
	}

	s.logger.Info("Source scraped", zap.String("source", sourceURL), zap.Int("entries", len(entries)))
	return entries, nil
}

func (s *ScraperService) buildBulletin(entry ScrapedBulletin, categories []models.RideCategory) models.TechnicalBulletin {
	text := entry.Title + " " + entry.Content
	sourceURL := entry.SourceURL

	bulletin := models.TechnicalBulletin{
		ID:             uuid.New().String(),
		Title:          entry.Title,
		Content:        entry.Content,
		BulletinNumber: ParseBulletinNumber(text),
		Priority:       ParsePriority(text),
		IssueDate:      ParseIssueDate(text, time.Now()),
		SourceURL:      &sourceURL,
	}
	bulletin.CategoryID = BestCategoryForBulletin(bulletin, categories)
	return bulletin
}

func (s *ScraperService) isDuplicate(ctx context.Context, bulletin models.TechnicalBulletin) bool {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.TechnicalBulletin{})
	if bulletin.BulletinNumber != nil {
		query = query.Where("bulletin_number = ? OR title = ?", *bulletin.BulletinNumber, bulletin.Title)
	} else {
		query = query.Where("title = ?", bulletin.Title)
	}
	query.Count(&count)
	return count > 0
}

var bulletinNumberRegex = regexp.MustCompile(`\b[A-Z]{2,5}[-/ ]?\d{2,4}(?:[-/]\d{2,4})?\b`)

// ParseBulletinNumber pulls a reference like "TB-2024/03" or "HSE 123" out
// of free text. Returns nil when nothing matches.
func ParseBulletinNumber(text string) *string {
	match := bulletinNumberRegex.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// ParsePriority maps severity wording to a bulletin priority. Defaults to
// medium when no severity word appears.
func ParsePriority(text string) models.BulletinPriority {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "immediate") || strings.Contains(lower, "danger") || strings.Contains(lower, "critical"):
		return models.BulletinPriorityCritical
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "high priority"):
		return models.BulletinPriorityHigh
	case strings.Contains(lower, "advisory") || strings.Contains(lower, "information only"):
		return models.BulletinPriorityLow
	default:
		return models.BulletinPriorityMedium
	}
}

var (
	isoDateRegex   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	ukDateRegex    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	wordyDateRegex = regexp.MustCompile(`\b(\d{1,2})\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{4})\b`)
)

// ParseIssueDate finds the first recognisable date in the text. Falls back
// to the given default when nothing parses.
func ParseIssueDate(text string, fallback time.Time) time.Time {
	if m := isoDateRegex.FindString(text); m != "" {
		if t, err := time.Parse("2006-01-02", m); err == nil {
			return t
		}
	}
	if m := ukDateRegex.FindString(text); m != "" {
		if t, err := time.Parse("2/1/2006", m); err == nil {
			return t
		}
	}
	if m := wordyDateRegex.FindString(text); m != "" {
		if t, err := time.Parse("2 January 2006", m); err == nil {
			return t
		}
	}
	return fallback
}
