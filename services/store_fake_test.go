package services

import (
	"sync"
	"time"

	"hotel-manager/models"
	"hotel-manager/repository"
)

// fakeStore is an in-memory repository.Store for unit tests. Transactions
// snapshot state on entry and restore it on error, and a transaction mutex
// serializes WithinTransaction callers the way row locks do in the real
// database.
type fakeStore struct {
	txMu sync.Mutex // held for the duration of a transaction
	mu   sync.Mutex // guards the maps for individual operations

	rooms        map[uint]*models.Room
	roomTypes    map[uint]*models.RoomType
	guests       map[uint]*models.Guest
	bookings     map[uint]*models.Booking
	transactions map[uint]*models.Transaction

	nextBookingID uint
	nextTxID      uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:        map[uint]*models.Room{},
		roomTypes:    map[uint]*models.RoomType{},
		guests:       map[uint]*models.Guest{},
		bookings:     map[uint]*models.Booking{},
		transactions: map[uint]*models.Transaction{},
	}
}

type fakeSnapshot struct {
	rooms        map[uint]*models.Room
	bookings     map[uint]*models.Booking
	transactions map[uint]*models.Transaction
	nextBooking  uint
	nextTx       uint
}

func (f *fakeStore) snapshot() fakeSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := fakeSnapshot{
		rooms:        map[uint]*models.Room{},
		bookings:     map[uint]*models.Booking{},
		transactions: map[uint]*models.Transaction{},
		nextBooking:  f.nextBookingID,
		nextTx:       f.nextTxID,
	}
	for id, r := range f.rooms {
		cp := *r
		snap.rooms[id] = &cp
	}
	for id, b := range f.bookings {
		cp := *b
		snap.bookings[id] = &cp
	}
	for id, t := range f.transactions {
		cp := *t
		snap.transactions[id] = &cp
	}
	return snap
}

func (f *fakeStore) restore(snap fakeSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms = snap.rooms
	f.bookings = snap.bookings
	f.transactions = snap.transactions
	f.nextBookingID = snap.nextBooking
	f.nextTxID = snap.nextTx
}

func (f *fakeStore) WithinTransaction(fn func(repository.Store) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

func (f *fakeStore) FindRoom(id uint) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	room, ok := f.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *room
	return &cp, nil
}

func (f *fakeStore) FindRoomForUpdate(id uint) (*models.Room, error) {
	return f.FindRoom(id)
}

func (f *fakeStore) FindRoomType(id uint) (*models.RoomType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.roomTypes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rt
	return &cp, nil
}

func (f *fakeStore) FindGuest(id uint) (*models.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.guests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (f *fakeStore) FindBooking(id uint) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) FindBookingForUpdate(id uint) (*models.Booking, error) {
	return f.FindBooking(id)
}

func (f *fakeStore) FindBookingDetailed(id uint) (*models.Booking, error) {
	booking, err := f.FindBooking(id)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.guests[booking.GuestID]; ok {
		booking.Guest = *g
	}
	if r, ok := f.rooms[booking.RoomID]; ok {
		booking.Room = *r
		if rt, ok := f.roomTypes[r.RoomTypeID]; ok {
			booking.Room.RoomType = *rt
		}
	}
	return booking, nil
}

func (f *fakeStore) CountOverlappingBookings(roomID uint, checkIn, checkOut time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, b := range f.bookings {
		if b.RoomID != roomID || !b.Active() {
			continue
		}
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) InsertBooking(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextBookingID++
	b.ID = f.nextBookingID
	b.CreatedAt = time.Now()
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateBookingStatus(id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeStore) DeleteBooking(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.bookings, id)
	for txID, t := range f.transactions {
		if t.BookingID == id {
			delete(f.transactions, txID)
		}
	}
	return nil
}

func (f *fakeStore) UpdateRoomStatus(id uint, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeStore) InsertTransaction(t *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextTxID++
	t.ID = f.nextTxID
	cp := *t
	f.transactions[t.ID] = &cp
	return nil
}

func (f *fakeStore) TransactionsForBooking(bookingID uint) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var txs []models.Transaction
	for _, t := range f.transactions {
		if t.BookingID == bookingID {
			txs = append(txs, *t)
		}
	}
	return txs, nil
}

func (f *fakeStore) CompletedTransactionsBetween(start, end time.Time) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var txs []models.Transaction
	for _, t := range f.transactions {
		if t.PaymentStatus != models.PaymentStatusCompleted {
			continue
		}
		if t.TransactionDate.Before(start) || t.TransactionDate.After(end) {
			continue
		}
		txs = append(txs, *t)
	}
	return txs, nil
}

func (f *fakeStore) BookingsCheckInBetween(start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var bookings []models.Booking
	for _, b := range f.bookings {
		if b.CheckInDate.Before(start) || b.CheckInDate.After(end) {
			continue
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}
