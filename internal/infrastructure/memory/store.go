// Package memory repositorios en memoria: modo demo sin base de datos y soporte de tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
)

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	txGate     sync.RWMutex // escrituras sueltas en lectura, TxRunner en exclusiva
	businesses map[string]*entity.Business
	ratingSum  map[string]int
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	events     map[string]*entity.Event
	banners    map[string]*entity.Banner
	leads      map[string]*entity.Lead
	seq        int64 // orden de inserción para listados estables
	order      map[string]int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		businesses: make(map[string]*entity.Business),
		ratingSum:  make(map[string]int),
		products:   make(map[string]*entity.Product),
		categories: make(map[string]*entity.Category),
		events:     make(map[string]*entity.Event),
		banners:    make(map[string]*entity.Banner),
		leads:      make(map[string]*entity.Lead),
		order:      make(map[string]int64),
	}
}

// Repositories repositorios sobre este almacén.
func (s *Store) Repositories() ports.Repositories {
	return s.repositories(false)
}

func (s *Store) repositories(inTx bool) ports.Repositories {
	v := view{s: s, inTx: inTx}
	return ports.Repositories{
		Businesses: &BusinessRepo{v},
		Products:   &ProductRepo{v},
		Categories: &CategoryRepo{v},
		Events:     &EventRepo{v},
		Banners:    &BannerRepo{v},
		Leads:      &LeadRepo{v},
	}
}

// view acceso de un repositorio al almacén. Fuera de una transacción cada escritura espera
// a que termine la transacción en curso, así un rollback no borra escrituras ajenas.
// Las lecturas no esperan y pueden ver cambios aún no confirmados.
type view struct {
	s    *Store
	inTx bool
}

func (v view) lock() func() {
	if !v.inTx {
		v.s.txGate.RLock()
	}
	v.s.mu.Lock()
	return func() {
		v.s.mu.Unlock()
		if !v.inTx {
			v.s.txGate.RUnlock()
		}
	}
}

// TxRunner transacciones en memoria: si fn falla se restaura la foto tomada al inicio.
type TxRunner struct {
	s *Store
}

var _ ports.TxRunner = (*TxRunner)(nil)

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn en exclusiva frente a otras transacciones y a las escrituras sueltas.
// fn debe escribir solo con los repositorios que recibe.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.Repositories) error) error {
	r.s.txGate.Lock()
	defer r.s.txGate.Unlock()
	snap := r.s.snapshot()
	if err := fn(r.s.repositories(true)); err != nil {
		r.s.restore(snap)
		return err
	}
	return ctx.Err()
}

type snapshot struct {
	businesses map[string]*entity.Business
	ratingSum  map[string]int
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	events     map[string]*entity.Event
	banners    map[string]*entity.Banner
	leads      map[string]*entity.Lead
	order      map[string]int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		businesses: copyMap(s.businesses),
		ratingSum:  copyMap(s.ratingSum),
		products:   copyMap(s.products),
		categories: copyMap(s.categories),
		events:     copyMap(s.events),
		banners:    copyMap(s.banners),
		leads:      copyMap(s.leads),
		order:      copyMap(s.order),
	}
}

func (s *Store) restore(sn snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses = sn.businesses
	s.ratingSum = sn.ratingSum
	s.products = sn.products
	s.categories = sn.categories
	s.events = sn.events
	s.banners = sn.banners
	s.leads = sn.leads
	s.order = sn.order
}

// copyMap copia el mapa; los valores puntero se comparten porque los repos nunca los mutan en sitio.
func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) track(id string) {
	if _, ok := s.order[id]; !ok {
		s.seq++
		s.order[id] = s.seq
	}
}
