package models

import (
	"time"

	"github.com/google/uuid"
)

// Message 代表訪客送出的一則留言，以及管理員的回覆
type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"not null" json:"email"`
	Username  string    `gorm:"not null" json:"username"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Reply     *string   `gorm:"type:text" json:"reply"`
	CreatedAt time.Time `gorm:"index;not null" json:"createdAt"`
	// 以下欄位只給管理員看，公開的輸出一律不包含
	IP     string `json:"-"`
	Device string `json:"-"`
}

// NewMessage 建立一則尚未回覆的留言，ID 與建立時間在此決定。
// 時間截到微秒，與 PostgreSQL timestamptz 的精度一致。
func NewMessage(email, username, message, ip, device string, createdAt time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		Message:   message,
		Reply:     nil,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
		IP:        ip,
		Device:    device,
	}
}

// PublicMessage 是對外公開的投影，不含 ip 與 device
type PublicMessage struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Reply     *string   `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Message) Public() PublicMessage {
	return PublicMessage{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Message:   m.Message,
		Reply:     m.Reply,
		CreatedAt: m.CreatedAt,
	}
}

// AdminMessage 是管理後台使用的投影
type AdminMessage struct {
	PublicMessage
	IP      string
	Device  string
	Country string
}

func (m Message) Admin(country string) AdminMessage {
	return AdminMessage{
		PublicMessage: m.Public(),
		IP:            m.IP,
		Device:        m.Device,
		Country:       country,
	}
}

func PublicMessages(messages []Message) []PublicMessage {
	out := make([]PublicMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Public())
	}
	return out
}
