package websocket_model

import (
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// ClientID identifies one connection of one user. Seq keeps ids unique
// when the same user opens several connections.
type ClientID struct {
	UserID uuid.UUID `json:"user_id"`
	Seq    uint64    `json:"seq"`
}

func (id ClientID) String() string {
	return id.UserID.String() + ":" + strconv.FormatUint(id.Seq, 10)
}

// Client couples a live connection with the data identifying it.
type Client[Data any] struct {
	Connection *websocket.Conn
	Data       Data
}

// ClientPool hands out unique client ids for one stream.
type ClientPool struct {
	mu  sync.Mutex
	seq uint64
	ids map[ClientID]struct{}
}

func CreateClientPool() *ClientPool {
	return &ClientPool{ids: make(map[ClientID]struct{})}
}

// CreateID reserves a fresh id for a connection of userID.
func (p *ClientPool) CreateID(userID uuid.UUID) *ClientID {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	id := ClientID{UserID: userID, Seq: p.seq}
	p.ids[id] = struct{}{}
	return &id
}

// DeleteID releases an id once its connection closed.
func (p *ClientPool) DeleteID(id ClientID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.ids, id)
}

// Active returns how many ids are currently reserved.
func (p *ClientPool) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.ids)
}
