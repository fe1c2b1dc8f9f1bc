package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"git.lost.host/meutraa/saber/internal/beat"
	"git.lost.host/meutraa/saber/internal/chart"
	"git.lost.host/meutraa/saber/internal/config"
	"git.lost.host/meutraa/saber/internal/fx"
	"git.lost.host/meutraa/saber/internal/game"
	"git.lost.host/meutraa/saber/internal/judge"
	"git.lost.host/meutraa/saber/internal/log"
	"git.lost.host/meutraa/saber/internal/render"
	"git.lost.host/meutraa/saber/internal/session"
	"git.lost.host/meutraa/saber/internal/sound"
	"git.lost.host/meutraa/saber/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var errQuit = errors.New("quit")

type Program struct {
	cfg      *config.Config
	log      *zap.Logger
	session  *session.Session
	renderer *render.DefaultRenderer
	chart    *game.Chart
	// terminal is set when both ends of the session are a terminal.
	terminal bool

	keys chan keyboard.KeyEvent
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	logger, err := log.New(cfg.LogLevel, cfg.LogFile)
	if nil != err {
		return err
	}
	defer logger.Sync()

	p := &Program{
		cfg:      cfg,
		log:      logger,
		terminal: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		keys:     make(chan keyboard.KeyEvent, 128),
	}
	if err := p.Init(); nil != err {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if p.renderer == nil {
		err = p.headless(ctx)
	} else {
		err = p.play(ctx)
	}
	if nil != err && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		return err
	}

	p.Summary(os.Stdout)
	return nil
}

func (p *Program) Init() error {
	var err error
	if p.cfg.Chart == "" {
		p.chart, err = chart.Demo()
	} else {
		p.chart, err = chart.Load(p.cfg.Chart)
	}
	if nil != err {
		return err
	}

	var effects fx.Effects = fx.Nop{}
	if p.terminal {
		layout := render.DefaultLayout
		if columns, rows, err := term.GetSize(int(os.Stdout.Fd())); nil == err {
			layout.Columns, layout.Rows = columns, rows
		}
		p.renderer = render.NewDefaultRenderer(os.Stdout, &theme.DefaultTheme{}, layout)
		effects = p.renderer
	}

	var feedback fx.Feedback = fx.Nop{}
	if p.cfg.Audio {
		player := sound.New(sound.DefaultSampleRate, 0, p.log.Named("sound"))
		rate := player.SampleRate()
		if err := speaker.Init(rate, rate.N(time.Second/30)); nil != err {
			return errors.Wrap(err, "unable to open audio device")
		}
		speaker.Play(player)
		feedback = player
	}

	// Without a keyboard to swing with every beat is hit for the player.
	p.session, err = session.New(session.Options{
		Chart:             p.chart,
		Mode:              p.cfg.Mode,
		SyncTest:          p.cfg.SyncTest,
		HasImmersiveInput: p.terminal,
		Seed:              p.cfg.Seed,
		CameraHeight:      p.cfg.CameraHeight,
		Reach:             judge.Reach{Sword: p.cfg.SwordReach, Punch: p.cfg.PunchReach},
		PoolSize:          p.cfg.PoolSize,
		Lookahead:         p.cfg.Lookahead,
		Speed:             p.cfg.Speed,
		Templates:         beat.Instant{},
		Effects:           effects,
		Feedback:          feedback,
		Log:               p.log,
	})
	return err
}

// headless plays the chart as fast as it can.
func (p *Program) headless(ctx context.Context) error {
	p.session.Start()
	for p.session.Tick(p.cfg.FramePeriod) {
		if err := ctx.Err(); nil != err {
			return err
		}
	}
	return nil
}

func (p *Program) play(ctx context.Context) error {
	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			p.log.Warn("unable to close keyboard", zap.Error(err))
		}
	}()

	if err := p.renderer.Init(); nil != err {
		return err
	}
	defer p.renderer.Deinit()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.pumpKeys(ctx, keyChannel) })
	g.Go(func() error {
		p.session.Start()
		err := p.renderer.RenderLoop(ctx, p.cfg.Delay, p.cfg.FramePeriod, p.Update)
		if nil == err {
			// Finished; stop the key pump too.
			err = errQuit
		}
		return err
	})
	return g.Wait()
}

// pumpKeys hands key presses to the frame loop and ends the game on escape.
func (p *Program) pumpKeys(ctx context.Context, keyChannel <-chan keyboard.KeyEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case key, ok := <-keyChannel:
			if !ok {
				return errQuit
			}
			if nil != key.Err {
				return errors.Wrap(key.Err, "keyboard")
			}
			if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
				return errQuit
			}
			select {
			case p.keys <- key:
			default:
				p.log.Debug("key dropped", zap.Int32("rune", key.Rune))
			}
		}
	}
}

// Update runs one frame: input, simulation, then drawing.
func (p *Program) Update(_, dt time.Duration) bool {
	for i := len(p.keys); i > 0; i-- {
		p.handle(<-p.keys)
	}

	cont := p.session.Tick(dt)

	p.renderer.Clear()
	p.session.EachActive(func(b *beat.Beat, ahead float64) {
		if b.Judgeable() {
			p.renderer.Beat(b.Type, b.Color, b.Cut, b.Lane, ahead)
		}
	})
	p.renderer.Status(p.status()...)
	return cont
}

func (p *Program) handle(key keyboard.KeyEvent) {
	switch key.Key {
	case keyboard.KeySpace:
		p.session.SetPlaying(!p.session.Settings().IsPlaying)
		return
	case keyboard.KeyTab:
		mode := game.ModePunch
		if p.session.Settings().Mode == game.ModePunch {
			mode = game.ModeClassic
		}
		p.session.SetMode(mode)
		return
	}
	if hand, cut, ok := p.cfg.KeyCut(key.Rune); ok {
		p.session.Swing(hand, cut)
	}
}

func (p *Program) status() []string {
	t := p.session.Tally()
	return []string{
		fmt.Sprintf("      Score:  %6d", t.Total),
		fmt.Sprintf("      Combo:  %6d", t.Combo),
		fmt.Sprintf("       Hits:  %6d", t.Hits),
		fmt.Sprintf("      Wrong:  %6d", t.Wrong),
		fmt.Sprintf("     Misses:  %6d", t.Misses),
		fmt.Sprintf("      Mines:  %6d", t.MineHits),
		fmt.Sprintf("       Mode:  %6s", p.session.Settings().Mode),
	}
}

func (p *Program) Summary(w io.Writer) {
	t := p.session.Tally()
	fmt.Fprintf(w, "%s\n", p.chart.Name)
	fmt.Fprintf(w, "  notes %d  mines %d\n", p.chart.NoteCount, p.chart.MineCount)
	fmt.Fprintf(w, "  score %d  mean %.1f  max combo %d  supers %d\n", t.Total, t.Mean(), t.MaxCombo, t.Supers)
	fmt.Fprintf(w, "  hits %d  wrong %d  misses %d  mines hit %d\n", t.Hits, t.Wrong, t.Misses, t.MineHits)
	if d := p.session.Dropped(); d > 0 {
		fmt.Fprintf(w, "  dropped %d\n", d)
	}
}
