package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/database"
	"github.com/Krusamile2539-hash/5S-Koh-Samui-School/models"
)

// hub แจ้งทุก stream ที่เปิดอยู่ว่ามีผลตรวจใหม่ — ผู้ฟังไปโหลด snapshot เอง
type changeHub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newChangeHub() *changeHub {
	return &changeHub{subs: make(map[chan struct{}]struct{})}
}

func (h *changeHub) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *changeHub) unsubscribe(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

func (h *changeHub) notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		// buffer 1 พอ: สัญญาณซ้ำระหว่างรอบยุบเหลือครั้งเดียว
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

var inspectionChanges = newChangeHub()

// GET /inspections/stream
// SSE: ส่ง snapshot ทั้งชุดทันทีที่เชื่อม และส่งใหม่ทุกครั้งที่มีการบันทึกผลตรวจ
// (แทน onSnapshot ของ client เดิม — client คำนวณรายงานใหม่จาก snapshot ล่าสุดเสมอ)
func (h *InspectionHandler) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ch := inspectionChanges.subscribe()
	defer inspectionChanges.unsubscribe(ch)

	send := func() error {
		var rows []models.Inspection
		if err := database.DB.Order("date DESC").Find(&rows).Error; err != nil {
			return err
		}
		b, err := json.Marshal(rows)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
			return err
		}
		w.Flush()
		return nil
	}

	if err := send(); err != nil {
		return err
	}

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case <-ch:
			if err := send(); err != nil {
				return nil
			}
		case <-ping.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
