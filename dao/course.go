package dao

import (
	"context"
	"time"

	"Woorigil/models"

	"gorm.io/gorm"
)

type Courses struct {
	Repo[models.Course]
	places *Places
}

func NewCourses(db *gorm.DB, places *Places) *Courses {
	return &Courses{Repo: NewRepo[models.Course](db), places: places}
}

func (c *Courses) ListByUser(ctx context.Context, userID int64) ([]models.Course, error) {
	var courses []models.Course
	err := c.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (c *Courses) FindOwned(ctx context.Context, id, userID int64) (*models.Course, error) {
	return c.FindByWhere(ctx, "id = ? AND user_id = ?", id, userID)
}

// CreateWithPlaces persists the course, its deduplicated places and the
// ordered join rows in a single transaction so a half-written course never
// becomes visible.
func (c *Courses) CreateWithPlaces(ctx context.Context, course *models.Course, seeds []models.Place) error {
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course.CreatedAt = time.Now()
		course.UpdatedAt = time.Now()
		if err := tx.Create(course).Error; err != nil {
			return err
		}

		for i := range seeds {
			seeds[i].UserID = course.UserID
			place, err := c.places.FindOrCreate(ctx, tx, &seeds[i])
			if err != nil {
				return err
			}
			cp := models.CoursePlace{
				CourseID:  course.ID,
				PlaceID:   &place.ID,
				Position:  i,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&cp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// StopsFor returns the course's places ordered by position. Join rows whose
// place was deleted are dropped.
func (c *Courses) StopsFor(ctx context.Context, courseID int64) ([]models.Place, error) {
	var places []models.Place
	err := c.Db.WithContext(ctx).
		Model(&models.Place{}).
		Joins("JOIN course_places ON course_places.place_id = places.id").
		Where("course_places.course_id = ?", courseID).
		Order("course_places.position ASC").
		Find(&places).Error
	return places, err
}

// Delete removes the course and cascades to its join rows.
func (c *Courses) Delete(ctx context.Context, id int64) error {
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.CoursePlace{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Course{}).Error
	})
}
