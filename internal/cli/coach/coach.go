package coach

import (
	"fmt"

	"github.com/stridecoach/stride/internal/cli"
	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/dispatch"
	"github.com/stridecoach/stride/internal/logger"
)

type CoachCmd struct {
	Call CoachCallCmd `cmd:"" help:"Request a coaching phone call."`
}

type CoachCallCmd struct {
	Bot string `help:"Bot to dispatch: morning_bot, setup_bot, or day_call_bot." default:"day_call_bot"`
}

func (c *CoachCallCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	bot := constants.DispatchBot(c.Bot)
	if !dispatch.ValidBot(bot) {
		return fmt.Errorf("unknown bot %q (valid: %s, %s, %s)", c.Bot, constants.BotMorning, constants.BotSetup, constants.BotDayCall)
	}

	client := dispatch.NewClient(settings.CoachEndpoint)
	callID, err := client.Dispatch(bot, settings)
	if err != nil {
		return err
	}

	logger.Info("Dispatched coaching call", "bot", bot, "call_id", callID)
	fmt.Printf("Call requested. Your phone should ring shortly (call id: %s).\n", callID)
	return nil
}
