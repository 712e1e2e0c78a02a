// Package storefront is the interactive terminal storefront: it owns all
// mutable state (cart, current order, notifications) and wires the catalog,
// cart and order packages to Bubble Tea.
package storefront

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/foodhub/internal/cart"
	"github.com/idilsaglam/foodhub/internal/catalog"
	"github.com/idilsaglam/foodhub/internal/model"
	"github.com/idilsaglam/foodhub/internal/order"
	"github.com/idilsaglam/foodhub/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type pane int

const (
	paneMenu pane = iota
	paneCart
)

// Options configures a storefront Model.
type Options struct {
	Catalog      *catalog.Catalog
	Orchestrator *order.Orchestrator
	Logger       *zap.Logger

	Currency string
	// ToastDuration is how long notifications stay up; 0 keeps them until replaced.
	ToastDuration time.Duration
	// Hero is the pre-rendered banner; empty uses the plain-text one.
	Hero string
}

// statusMsg advances the order identified by OrderID.
type statusMsg struct {
	OrderID string
	To      model.Status
}

type toastExpiredMsg struct{ seq int }

type toast struct {
	Title       string
	Description string
}

// Model is the Bubble Tea model for the whole storefront page.
type Model struct {
	catalog *catalog.Catalog
	cart    *cart.Cart
	orch    *order.Orchestrator
	logger  *zap.Logger

	currency string
	toastDur time.Duration
	hero     string

	categories []string
	tab        int
	menu       list.Model

	pane      pane
	cartIndex int

	order   *model.Order
	spinner spinner.Model

	toast    *toast
	toastSeq int

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New builds the storefront with an empty cart and no order.
func New(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Orchestrator == nil {
		opts.Orchestrator = order.NewOrchestrator(nil, "", opts.Logger)
	}
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	if opts.Hero == "" {
		opts.Hero = plainHero()
	}

	t := ui.Current()
	cats := opts.Catalog.Categories()

	l := list.New(toListItems(opts.Catalog.Items(), opts.Currency), foodDelegate{}, defaultWidth-4, 12)
	l.Title = cats[0]
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	// q/ctrl+c are handled by the storefront; esc must never quit.
	l.DisableQuitKeybindings()
	l.Styles.Title = t.Title
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.FilterInput.Placeholder = "Search for dishes..."
	l.SetStatusBarItemName("dish", "dishes")

	sp := spinner.New()
	sp.Spinner = spinner.Pulse
	sp.Style = t.Accent

	return Model{
		catalog:    opts.Catalog,
		cart:       cart.New(opts.Catalog),
		orch:       opts.Orchestrator,
		logger:     opts.Logger,
		currency:   opts.Currency,
		toastDur:   opts.ToastDuration,
		hero:       opts.Hero,
		categories: cats,
		menu:       l,
		spinner:    sp,
		keys:       defaultKeys(),
		help:       help.New(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Run starts the storefront program and blocks until the user quits.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case statusMsg:
		m.applyStatus(msg)
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if m.order == nil || m.order.Status.Terminal() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.pane == paneCart {
			return m.updateCart(msg)
		}
		return m.updateMenu(msg)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to it.
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		cmd := m.selectTab(m.tab + 1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		cmd := m.selectTab(m.tab - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Cart):
		m.pane = paneCart
		m.clampCartIndex()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		f, ok := m.menu.SelectedItem().(foodItem)
		if !ok {
			return m, nil
		}
		cmd := m.addToCart(f.item.ID)
		return m, cmd
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.cart.Entries()
	var selected *model.CartEntry
	if m.cartIndex >= 0 && m.cartIndex < len(entries) {
		selected = &entries[m.cartIndex]
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.pane = paneMenu
	case key.Matches(msg, m.keys.Up):
		if m.cartIndex > 0 {
			m.cartIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cartIndex < len(entries)-1 {
			m.cartIndex++
		}
	case key.Matches(msg, m.keys.Inc):
		if selected != nil {
			m.cart.UpdateQuantity(selected.Item.ID, selected.Quantity+1)
		}
	case key.Matches(msg, m.keys.Dec):
		if selected != nil {
			m.cart.UpdateQuantity(selected.Item.ID, selected.Quantity-1)
		}
	case key.Matches(msg, m.keys.Remove):
		if selected != nil {
			m.cart.Remove(selected.Item.ID)
		}
	case key.Matches(msg, m.keys.Checkout):
		cmd := m.checkout()
		return m, cmd
	}
	m.clampCartIndex()
	return m, nil
}

func (m *Model) addToCart(id string) tea.Cmd {
	item, ok := m.cart.Add(id)
	if !ok {
		return nil
	}
	m.logger.Debug("added to cart", zap.String("item_id", id), zap.Int("quantity", m.cart.Quantity(id)))
	return m.notify("Added to cart", item.Name+" has been added to your cart.")
}

// checkout places the order, closes the cart and schedules the status ticks.
// An empty cart does nothing.
func (m *Model) checkout() tea.Cmd {
	p, ok := m.orch.Checkout(m.cart)
	if !ok {
		return nil
	}
	if m.order != nil && !m.order.Status.Terminal() {
		m.logger.Info("order replaced", zap.String("previous", m.order.ID), zap.String("order_id", p.Order.ID))
	}
	spinning := m.order != nil && !m.order.Status.Terminal()
	m.order = p.Order
	m.pane = paneMenu
	m.cartIndex = 0
	m.resize()

	cmds := []tea.Cmd{m.notify(p.Notice.Title, p.Notice.Description)}
	for _, tr := range p.Schedule {
		cmds = append(cmds, statusTick(p.Order.ID, tr))
	}
	if !spinning {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func statusTick(orderID string, tr order.Transition) tea.Cmd {
	return tea.Tick(tr.After, func(time.Time) tea.Msg {
		return statusMsg{OrderID: orderID, To: tr.To}
	})
}

// applyStatus advances the current order. Ticks scheduled for a replaced
// order, or that would repeat, skip or regress a status, are dropped.
func (m *Model) applyStatus(msg statusMsg) {
	if m.order == nil || msg.OrderID != m.order.ID {
		m.logger.Debug("stale status dropped", zap.String("order_id", msg.OrderID), zap.String("to", string(msg.To)))
		return
	}
	from := m.order.Status
	if !m.order.Advance(msg.To) {
		m.logger.Debug("status transition ignored", zap.String("from", string(from)), zap.String("to", string(msg.To)))
		return
	}
	m.logger.Info("order status", zap.String("order_id", m.order.ID), zap.String("status", string(m.order.Status)))
}

func (m *Model) notify(title, desc string) tea.Cmd {
	m.toastSeq++
	m.toast = &toast{Title: title, Description: desc}
	if m.toastDur <= 0 {
		return nil
	}
	seq := m.toastSeq
	return tea.Tick(m.toastDur, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m *Model) selectTab(i int) tea.Cmd {
	n := len(m.categories)
	m.tab = ((i % n) + n) % n
	cat := m.categories[m.tab]
	m.menu.ResetFilter()
	m.menu.Title = cat
	cmd := m.menu.SetItems(toListItems(m.catalog.Filter(cat), m.currency))
	m.menu.Select(0)
	return cmd
}

func (m *Model) clampCartIndex() {
	if n := m.cart.Len(); m.cartIndex >= n {
		m.cartIndex = n - 1
	}
	if m.cartIndex < 0 {
		m.cartIndex = 0
	}
}

func (m *Model) resize() {
	// header, hero, tabs, tracker and help take roughly this many rows
	reserved := 8 + lineCount(m.hero)
	if m.order != nil {
		reserved += 6
	}
	h := m.height - reserved
	if h < 6 {
		h = 6
	}
	m.menu.SetSize(m.width-4, h)
	m.help.Width = m.width
}
