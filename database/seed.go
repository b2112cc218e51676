package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cinema_booking/constants"
	"cinema_booking/model"
)

// SeedData creates the admin account, the default hall with its seat grid
// and the starter concession products. FirstOrCreate keeps restarts
// idempotent.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123456"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.User{
		Name:     "Administrator",
		Phone:    "099000000",
		Password: hashPassword,
		Role:     constants.ROLE_ADMIN,
		IsActive: true,
	}
	if err := db.Where(model.User{Phone: admin.Phone}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	hall := model.Hall{Name: "Մեծ դահլիճ"}
	if err := db.Where(model.Hall{Name: hall.Name}).FirstOrCreate(&hall).Error; err != nil {
		log.Println("failed to seed default hall:", err)
		return
	}

	var seatCount int64
	db.Model(&model.Seat{}).Where("hall_id = ?", hall.ID).Count(&seatCount)
	if seatCount == 0 {
		rows := "ABCDEFGH"
		const columns = 10
		seats := make([]model.Seat, 0, len(rows)*columns)
		for _, row := range rows {
			seatType := model.SeatStandard
			// Last two rows are VIP.
			if row == 'G' || row == 'H' {
				seatType = model.SeatVip
			}
			for number := 1; number <= columns; number++ {
				seats = append(seats, model.Seat{
					HallId:   hall.ID,
					Row:      string(row),
					Number:   number,
					SeatType: seatType,
				})
			}
		}
		if err := db.Create(&seats).Error; err != nil {
			log.Println("failed to seed seats:", err)
		}
	}

	products := []model.Product{
		{Name: "Պոպկորն (մեծ)", Price: 1500, IsAvailable: true},
		{Name: "Պոպկորն (փոքր)", Price: 900, IsAvailable: true},
		{Name: "Կոկա-Կոլա 0.5լ", Price: 600, IsAvailable: true},
		{Name: "Նաչոս", Price: 1200, IsAvailable: true},
	}
	for _, product := range products {
		if err := db.Where(model.Product{Name: product.Name}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}
}
