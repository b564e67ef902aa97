package gen

import (
	"fmt"
	"net/url"

	"github.com/teranos/eventgen/identity"
)

// QRCodeBaseURL is the scannable-code request endpoint; data is appended query-escaped.
const QRCodeBaseURL = "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="

// RoomBuildings are the building letters of a room code.
var RoomBuildings = []string{"A", "B", "C", "D", "E", "F"}

// QRCode is a scannable lookup payload for one person.
type QRCode struct {
	Email    string
	FullName string
	URL      string
}

// Room is a person's home-base room, not a schedule venue.
type Room struct {
	Email      string
	FullName   string
	RoomNumber string
	Details    string
}

// GenerateQRCodes maps every person to its QR code. It draws no randomness.
func GenerateQRCodes(persons []Person) []QRCode {
	codes := make([]QRCode, 0, len(persons))
	for _, p := range persons {
		codes = append(codes, QRCode{
			Email:    p.Email,
			FullName: p.FullName,
			URL:      QRCodeURL(p.FullName, p.Email),
		})
	}
	return codes
}

// QRCodeURL encodes "name | email" into the QR request URL.
func QRCodeURL(fullName, email string) string {
	return QRCodeBaseURL + url.QueryEscape(fullName+" | "+email)
}

// GenerateRooms assigns every person a room. Room codes may repeat.
func GenerateRooms(f identity.Faker, persons []Person) []Room {
	rooms := make([]Room, 0, len(persons))
	for _, p := range persons {
		rooms = append(rooms, Room{
			Email:      p.Email,
			FullName:   p.FullName,
			RoomNumber: RoomCode(f),
			Details:    f.Sentence(8),
		})
	}
	return rooms
}

// RoomCode draws building letter, floor 1-6, and room 00-25, e.g. "C412".
func RoomCode(f identity.Faker) string {
	building := identity.Pick(f, RoomBuildings)
	floor := f.IntRange(1, 6)
	room := f.IntRange(0, 25)
	return fmt.Sprintf("%s%d%02d", building, floor, room)
}
