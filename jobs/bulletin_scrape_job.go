package jobs

import (
	"context"
	"fmt"
	"time"

	"rideready-api/services"
)

// BulletinScrapeJob runs the bulletin scraper on a schedule.
type BulletinScrapeJob struct {
	scraper *services.ScraperService
	ticker  *time.Ticker
	done    chan bool
}

func NewBulletinScrapeJob(scraper *services.ScraperService, interval time.Duration) *BulletinScrapeJob {
	return &BulletinScrapeJob{
		scraper: scraper,
		ticker:  time.NewTicker(interval),
		done:    make(chan bool),
	}
}

// Start begins the scrape job
func (j *BulletinScrapeJob) Start() {
	fmt.Println("Bulletin scrape job started")

	go func() {
		// Run immediately on start
		j.scrape()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.scrape()
			case <-j.done:
				fmt.Println("Bulletin scrape job stopped")
				return
			}
		}
	}()
}

// Stop stops the scrape job
func (j *BulletinScrapeJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *BulletinScrapeJob) scrape() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	inserted, err := j.scraper.ScrapeAll(ctx)
	if err != nil {
		fmt.Printf("Error during bulletin scrape: %v\n", err)
		return
	}

	fmt.Printf("Bulletin scrape completed, %d new bulletins\n", inserted)
}
