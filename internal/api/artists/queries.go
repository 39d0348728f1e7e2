package artists

import (
	domain "soundwave-app/internal/domain/artists"

	"gorm.io/gorm"
)

// approvedQuery is the base restriction for every public read: only APPROVED
// records are ever visible outside the admin area.
func approvedQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&domain.Artist{}).Where("status = ?", domain.StatusApproved)
}

// filteredQuery applies the optional public discovery filters.
func filteredQuery(db *gorm.DB, district, genre, q string) *gorm.DB {
	query := approvedQuery(db)
	if district != "" {
		query = query.Where("district = ?", district)
	}
	if genre != "" {
		query = query.Where("genres LIKE ?", "%"+genre+"%")
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR bio LIKE ? OR genres LIKE ?", like, like, like)
	}
	return query
}

// orderFor maps the public sort keys onto SQL orderings. Unknown keys get the
// featured-first default.
func orderFor(sort string) string {
	switch sort {
	case "newest":
		return "created_at DESC"
	case "az":
		return "name ASC"
	case "district":
		return "district ASC, name ASC"
	default:
		return "featured DESC, updated_at DESC"
	}
}
