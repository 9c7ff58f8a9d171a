package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
)

// BannerSave аргументы создания/обновления баннера.
type BannerSave struct {
	Title    string
	ImageURL string
	LinkURL  string
	StartsAt time.Time
	EndsAt   time.Time
	Active   bool
	Audience domain.AudienceType
}

type AnnouncementSave struct {
	Title    string
	Body     string
	StartsAt time.Time
	EndsAt   time.Time
	Active   bool
	Audience domain.AudienceType
}
