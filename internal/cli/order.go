package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/foodhub/internal/cart"
	"github.com/idilsaglam/foodhub/internal/model"
	"github.com/idilsaglam/foodhub/internal/order"
	"github.com/idilsaglam/foodhub/internal/ui"
)

type orderOptions struct {
	noWatch bool
	step    time.Duration
}

func newOrderCmd(a *app) *cobra.Command {
	var opt orderOptions
	cmd := &cobra.Command{
		Use:   "order <item-id>...",
		Short: "Check out the given items and follow the order until delivered",
		Long: `Adds each item id to a fresh cart (repeat an id to order more than one),
checks out, and prints every status change until the order is delivered.
Unknown ids are skipped.`,
		Example: `  foodhub order 1 1 3
  foodhub order 2 --no-watch`,
		Args: minArgs(1, "foodhub order <item-id>..."),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.placeOrder(ctx, args, opt)
		},
	}
	cmd.Flags().BoolVar(&opt.noWatch, "no-watch", false, "print the order and exit without following it")
	cmd.Flags().DurationVar(&opt.step, "step", 0, "delay between status changes (default from config)")
	return cmd
}

func (a *app) placeOrder(ctx context.Context, ids []string, opt orderOptions) error {
	c := cart.New(a.catalog)
	for _, id := range ids {
		if _, ok := c.Add(id); !ok {
			ui.Muted(a.stderr, fmt.Sprintf("skipping unknown item %q", id))
		}
	}

	step := a.cfg.Order.StepDelay
	if opt.step > 0 {
		step = opt.step
	}
	p, ok := a.orchestrator(step).Checkout(c)
	if !ok {
		return usagef("cart is empty, nothing to check out (see `foodhub menu` for item ids)")
	}
	a.printOrder(p.Order)
	ui.OK(a.stdout, p.Notice.Title+" "+p.Notice.Description)

	if opt.noWatch {
		return nil
	}
	fmt.Fprintln(a.stdout, statusLine(*p.Order))
	err := order.Simulate(ctx, p.Order, p.Schedule, func(o model.Order) {
		a.logger.Info("order status", zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
		fmt.Fprintln(a.stdout, statusLine(o))
	})
	if errors.Is(err, context.Canceled) {
		ui.Muted(a.stdout, "stopped following order #"+p.Order.ID)
		return nil
	}
	return err
}

func (a *app) printOrder(o *model.Order) {
	t := ui.Current()
	lines := []string{t.Title.Render("Order #"+o.ID) + "  " + t.Muted.Render("Est. "+o.EstimatedTime)}
	for _, e := range o.Items {
		lines = append(lines, fmt.Sprintf("%2dx %s  %s",
			e.Quantity, e.Item.Name, t.Price.Render(model.FormatPrice(a.cfg.Currency, e.LineTotal()))))
	}
	lines = append(lines, "Total: "+t.Price.Render(model.FormatPrice(a.cfg.Currency, o.Total)))
	fmt.Fprintln(a.stdout, ui.Panel(lines))
}

func statusLine(o model.Order) string {
	t := ui.Current()
	label := t.Accent.Render(fmt.Sprintf("%-10s", o.Status.Label()))
	if o.Status.Terminal() {
		label = t.Success.Render(fmt.Sprintf("%-10s", o.Status.Label()))
	}
	return fmt.Sprintf("%s %s", label, ui.ProgressBar(order.Progress(o.Status), 24))
}
