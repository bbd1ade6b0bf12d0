package utils

import (
	"encoding/json"
	"log"
	"time"

	"mzrun/config"
	"mzrun/database"
	courseModels "mzrun/models/course"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// The marketing tags managed by the scheduler. Any other tag on a course is
// left untouched.
var managedTags = map[string]bool{
	"NEW": true,
	"베스트": true,
	"할인중": true,
}

// logTagScheduler logs scheduler events with timestamp
func logTagScheduler(message string) {
	log.Printf("[TAG-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RefreshMarketingTags recomputes the managed marketing tags on every course:
// NEW within 30 days of creation, 베스트 above the student threshold, 할인중
// while the price is below the original price.
func RefreshMarketingTags(db *gorm.DB) {
	newCutoff := now.BeginningOfDay().AddDate(0, 0, -30)

	var courses []courseModels.Course
	if err := db.Find(&courses).Error; err != nil {
		logTagScheduler("Error fetching courses: " + err.Error())
		return
	}

	updated := 0
	for _, course := range courses {
		var tags []string
		if err := json.Unmarshal([]byte(course.Tags), &tags); err != nil {
			tags = []string{}
		}

		next := make([]string, 0, len(tags)+3)
		if course.CreatedAt.After(newCutoff) {
			next = append(next, "NEW")
		}
		if course.StudentCount >= config.AppConfig.BestSellerMinStudents {
			next = append(next, "베스트")
		}
		if course.Price < course.OriginalPrice {
			next = append(next, "할인중")
		}
		for _, tag := range tags {
			if !managedTags[tag] {
				next = append(next, tag)
			}
		}

		nextJSON, err := json.Marshal(next)
		if err != nil || string(nextJSON) == course.Tags {
			continue
		}

		if err := db.Model(&courseModels.Course{}).
			Where("id = ?", course.ID).
			Update("tags", string(nextJSON)).Error; err != nil {
			logTagScheduler("Error updating course tags: " + err.Error())
			continue
		}
		updated++
	}

	if updated > 0 {
		logTagScheduler("Marketing tags refreshed.")
	}
}

// StartTagScheduler refreshes tags once at startup and then nightly
func StartTagScheduler() *cron.Cron {
	RefreshMarketingTags(database.Database.Db)

	scheduler := cron.New()
	_, err := scheduler.AddFunc("0 3 * * *", func() {
		RefreshMarketingTags(database.Database.Db)
	})
	if err != nil {
		logTagScheduler("Error scheduling tag refresh: " + err.Error())
		return scheduler
	}

	scheduler.Start()
	return scheduler
}
