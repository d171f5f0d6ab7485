package app

import (
	"context"
	"sync"

	"github.com/arenvale/logpool/pkg/logpool"
	"github.com/arenvale/logpool/pkg/ui"
	"github.com/arenvale/logpool/pkg/ui/pages"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// consoleBufferSize is how many console writes may queue up before the
// channel writer starts dropping them.
const consoleBufferSize = 256

// App orchestrates the TUI application, managing the lifecycle, the pool
// and the UI managers.
type App struct {
	*tview.Application
	layoutManager  *ui.LayoutManager
	navManager     *ui.NavigationManager
	dialogManager  *ui.DialogManager
	focusManager   *ui.FocusManager
	consoleHandler *ui.ConsoleHandler

	pool   *logpool.Pool
	logger *logpool.Logger

	// Pages
	viewerPage  *pages.ViewerPage
	consolePage *pages.ConsolePage

	appCtx    context.Context
	cancelApp context.CancelFunc

	shutdownWg sync.WaitGroup
}

// NewApp creates and initializes the TUI application around pool. The
// pool's console is redirected into the UI's console stream; install a new
// writer with SetConsole after the app stops to print elsewhere.
func NewApp(pool *logpool.Pool) *App {
	appCtx, cancelApp := context.WithCancel(context.Background())

	a := &App{
		Application: tview.NewApplication(),
		pool:        pool,
		logger:      logpool.NewLogger(pool),
		appCtx:      appCtx,
		cancelApp:   cancelApp,
	}

	// Route echoes and printed logs through a channel into the UI.
	consoleChannel := make(chan []byte, consoleBufferSize)
	a.pool.SetConsole(logpool.NewChannelWriter(appCtx, consoleChannel))
	a.consoleHandler = ui.NewConsoleHandler(a, consoleChannel, &a.shutdownWg)
	a.consoleHandler.Start(appCtx)

	a.layoutManager = ui.NewLayoutManager(a, appCtx)
	a.navManager = ui.NewNavigationManager(a, a.layoutManager.Pages())
	a.dialogManager = ui.NewDialogManager(a)
	a.focusManager = ui.NewFocusManager(a)
	a.SetRoot(a.layoutManager.RootPrimitive(), true).EnableMouse(true)

	a.viewerPage = pages.NewViewerPage(a)
	a.consolePage = pages.NewConsolePage(a, a.consoleHandler.TextView())

	a.navManager.Register(ui.PageViewerID, a.viewerPage)
	a.navManager.Register(ui.PageConsoleID, a.consolePage)

	a.setupGlobalInputCapture()

	return a
}

// setupGlobalInputCapture defines application-wide keybindings.
func (a *App) setupGlobalInputCapture() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		focusManager := a.GetFocusManager()

		if event.Key() == tcell.KeyTab {
			if focusManager.Cycle(a.navManager.GetCurrentPage(), true) {
				return nil
			}
		}
		if event.Key() == tcell.KeyBacktab {
			if focusManager.Cycle(a.navManager.GetCurrentPage(), false) {
				return nil
			}
		}
		if event.Key() == tcell.KeyCtrlL {
			go a.QueueUpdateDraw(a.navManager.ToggleConsolePage)
			return nil
		}
		if event.Key() == tcell.KeyCtrlC {
			go a.QueueUpdateDraw(a.dialogManager.ShowQuitDialog)
			return nil
		}
		return event
	})
}

// Run starts the tview application event loop.
func (a *App) Run() error {
	a.navManager.SwitchTo(ui.PageViewerID)
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	screen.SetTitle("Log Pool Viewer") // tview doesn't expose this
	a.EnableMouse(true)
	a.EnablePaste(true)
	a.SetScreen(screen)
	return a.Application.Run()
}

// Stop gracefully stops the application.
func (a *App) Stop() {
	a.cancelApp()
	a.shutdownWg.Wait()
	a.Application.Stop()
}

// SetFocus moves the focus to the given primitive.
func (a *App) SetFocus(p tview.Primitive) {
	a.Application.SetFocus(p)
}

// AppInterface methods to be called by UI components
func (a *App) GetApplicationContext() context.Context { return a.appCtx }
func (a *App) GetPool() *logpool.Pool                 { return a.pool }
func (a *App) GetLogger() *logpool.Logger             { return a.logger }
func (a *App) Navigation() *ui.NavigationManager      { return a.navManager }
func (a *App) Dialogs() *ui.DialogManager             { return a.dialogManager }
func (a *App) Layout() *ui.LayoutManager              { return a.layoutManager }
func (a *App) GetFocusManager() *ui.FocusManager      { return a.focusManager }
