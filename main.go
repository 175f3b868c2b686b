package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/nmil1484-source/the-wild-share/internal/admin"
	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/app"
	"github.com/nmil1484-source/the-wild-share/internal/booking"
	"github.com/nmil1484-source/the-wild-share/internal/callback"
	"github.com/nmil1484-source/the-wild-share/internal/catalog"
	"github.com/nmil1484-source/the-wild-share/internal/config"
	"github.com/nmil1484-source/the-wild-share/internal/listing"
	"github.com/nmil1484-source/the-wild-share/internal/messaging"
	"github.com/nmil1484-source/the-wild-share/internal/models"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
	"github.com/nmil1484-source/the-wild-share/internal/preview"
	"github.com/nmil1484-source/the-wild-share/internal/profile"
	"github.com/nmil1484-source/the-wild-share/internal/session"
)

var launchURL = flag.String("url", "", "Launch URL to handle (reset link or boost checkout return)")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := session.NewFileStore(cfg.SessionFilePath)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	sessionMgr := session.NewManager(store)
	client := api.NewClient(cfg, sessionMgr.Token)
	sessionMgr.SetAPI(client)

	previews, err := preview.NewStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize preview store: %v", err)
	}

	notifier := notify.NewCompositeNotifier(notify.NewTerminalNotifier())
	if cfg.NotificationLogPath != "" {
		fileNotifier, err := notify.NewFileNotifier(cfg.NotificationLogPath)
		if err != nil {
			log.Printf("Notification log disabled: %v", err)
		} else {
			notifier.AddNotifier(fileNotifier)
		}
	}

	terminal := newTerminal()

	catalogSvc := catalog.NewService(client)
	listingMgr := listing.NewManager(cfg, client, catalogSvc, previews, terminal, notifier)
	bookingFlow := booking.NewFlow(client, sessionMgr, notifier)
	panel := messaging.NewPanel(client, notifier)
	poller := messaging.NewPoller(panel, cfg.UnreadPollInterval, cfg.UnreadPollBurst)
	profileMgr := profile.NewManager(cfg, client, sessionMgr, terminal, notifier)
	console := admin.NewConsole(client, sessionMgr, terminal, terminal, notifier)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	controller := app.New(rootCtx, app.Deps{
		Session:   sessionMgr,
		AuthAPI:   client,
		Catalog:   catalogSvc,
		Listing:   listingMgr,
		Booking:   bookingFlow,
		Messaging: panel,
		Poller:    poller,
		Profile:   profileMgr,
		Admin:     console,
		Notifier:  notifier,
	})

	listener := callback.NewServer(cfg)
	listener.Start()
	go func() {
		for {
			select {
			case <-rootCtx.Done():
				return
			case event := <-listener.Events():
				controller.HandleCallbackEvent(controller.ViewContext(), event)
			}
		}
	}()

	if err := controller.Hydrate(rootCtx); err != nil {
		log.Printf("Session restore failed: %v", err)
	}
	controller.HandleLaunchURL(rootCtx, *launchURL)

	if err := controller.SwitchTo(app.ViewBrowse); err != nil {
		log.Printf("Initial catalog load failed: %v", err)
	}

	fmt.Printf("%s\nType 'help' for commands.\n", cfg.AppName)
	shell := &shell{
		cfg:        cfg,
		controller: controller,
		session:    sessionMgr,
		catalog:    catalogSvc,
		listing:    listingMgr,
		booking:    bookingFlow,
		messaging:  panel,
		profile:    profileMgr,
		admin:      console,
		terminal:   terminal,
	}
	shell.run(rootCtx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := listener.Shutdown(shutdownCtx); err != nil {
		log.Printf("Callback listener shutdown error: %v", err)
	}
	fmt.Println("Goodbye.")
}

// terminal implements the confirmation and reason prompts on stdin.
type terminal struct {
	scanner *bufio.Scanner
}

func newTerminal() *terminal {
	return &terminal{scanner: bufio.NewScanner(os.Stdin)}
}

func (t *terminal) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	if !t.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(t.scanner.Text()))
	return answer == "y" || answer == "yes"
}

func (t *terminal) Reason(prompt string) (string, bool) {
	fmt.Printf("%s ", prompt)
	if !t.scanner.Scan() {
		return "", false
	}
	reason := strings.TrimSpace(t.scanner.Text())
	if reason == "" {
		return "", false
	}
	return reason, true
}

func (t *terminal) readLine() (string, bool) {
	fmt.Print("> ")
	if !t.scanner.Scan() {
		return "", false
	}
	return t.scanner.Text(), true
}

type shell struct {
	cfg        *config.Config
	controller *app.App
	session    *session.Manager
	catalog    *catalog.Service
	listing    *listing.Manager
	booking    *booking.Flow
	messaging  *messaging.Panel
	profile    *profile.Manager
	admin      *admin.Console
	terminal   *terminal
}

func (s *shell) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		line, ok := s.terminal.readLine()
		if !ok {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			return
		}
		s.dispatch(ctx, command, args, line)
	}
}

func (s *shell) dispatch(ctx context.Context, command string, args []string, line string) {
	viewCtx := s.controller.ViewContext()
	switch command {
	case "help":
		printHelp()

	case "view":
		if len(args) != 1 {
			fmt.Println("usage: view <name>")
			return
		}
		view, ok := parseView(args[0])
		if !ok {
			fmt.Printf("unknown view %q\n", args[0])
			return
		}
		if err := s.controller.SwitchTo(view); err == nil {
			fmt.Printf("-> %s\n", s.controller.CurrentView())
		}

	case "login":
		if len(args) != 2 {
			fmt.Println("usage: login <email> <password>")
			return
		}
		s.controller.Login(viewCtx, args[0], args[1])

	case "register":
		if len(args) != 5 {
			fmt.Println("usage: register <email> <password> <first> <last> <owner|renter|both>")
			return
		}
		s.controller.Register(viewCtx, api.RegisterRequest{
			Email:       args[0],
			Password:    args[1],
			FirstName:   args[2],
			LastName:    args[3],
			UserType:    models.UserType(args[4]),
			TermsAgreed: s.terminal.Confirm("Do you agree to the terms of service?"),
		})

	case "logout":
		if err := s.controller.Logout(); err != nil {
			fmt.Printf("logout: %v\n", err)
		}

	case "whoami":
		if user := s.session.CurrentUser(); user != nil {
			fmt.Printf("%s %s <%s> type=%s admin=%v verified=%v\n",
				user.FirstName, user.LastName, user.Email, user.UserType, user.IsAdmin, user.IsIdentityVerified)
		} else {
			fmt.Println("not signed in")
		}

	case "forgot":
		if len(args) != 1 {
			fmt.Println("usage: forgot <email>")
			return
		}
		s.controller.RequestPasswordReset(viewCtx, args[0])

	case "resetpw":
		if len(args) != 1 {
			fmt.Println("usage: resetpw <new-password>")
			return
		}
		s.controller.ResetPassword(viewCtx, args[0])

	case "category":
		if len(args) != 1 {
			fmt.Println("usage: category <all|bikes|water|camping|power|gear>")
			return
		}
		if err := s.catalog.SetCategory(viewCtx, models.Category(args[0])); err != nil {
			fmt.Printf("category: %v\n", err)
			return
		}
		s.printItems(s.catalog.Visible())

	case "search":
		s.catalog.SetQuery(strings.TrimSpace(strings.TrimPrefix(line, "search")))
		s.printItems(s.catalog.Visible())

	case "location":
		if len(args) == 0 {
			fmt.Println("usage: location <name|all>")
			return
		}
		s.catalog.SetLocation(strings.Join(args, " "))
		s.printItems(s.catalog.Visible())

	case "locations":
		for _, loc := range s.catalog.Locations() {
			fmt.Println(loc)
		}

	case "items":
		s.printItems(s.catalog.Visible())

	case "book":
		s.cmdBook(args)

	case "dates":
		if len(args) != 2 {
			fmt.Println("usage: dates <start YYYY-MM-DD> <end YYYY-MM-DD>")
			return
		}
		if err := s.booking.SelectDates(args[0], args[1]); err != nil {
			fmt.Printf("dates: %v\n", err)
		}

	case "checkout":
		if err := s.booking.CreateDraft(viewCtx); err != nil {
			return
		}
		if draft := s.booking.Draft(); draft != nil {
			fmt.Printf("booking #%d total $%.2f deposit $%.2f\n", draft.ID, draft.TotalCost, draft.DepositAmount)
		}
		if _, err := s.booking.BeginPayment(viewCtx); err == nil {
			fmt.Println("payment intent created, run 'pay' after completing the payment widget")
		}

	case "pay":
		if err := s.booking.CompletePayment(viewCtx); err == nil {
			s.controller.SwitchTo(app.ViewBookings)
		}

	case "cancel-booking":
		s.booking.Cancel()
		fmt.Println("booking attempt cancelled")

	case "bookings":
		if err := s.booking.LoadMyBookings(viewCtx); err != nil {
			fmt.Printf("bookings: %v\n", err)
			return
		}
		for _, b := range s.booking.MyBookings() {
			fmt.Printf("#%d equipment=%d %s..%s status=%s total=$%.2f\n",
				b.ID, b.EquipmentID, b.StartDate, b.EndDate, b.Status, b.TotalCost)
		}

	case "approve", "decline", "complete":
		s.cmdBookingStatus(viewCtx, command, args)

	case "refund":
		if id, ok := intArg(args, 0, "usage: refund <booking-id>"); ok {
			s.booking.RefundDeposit(viewCtx, id)
		}

	case "review":
		s.cmdReview(viewCtx, args, line)

	case "contracts":
		if id, ok := intArg(args, 0, "usage: contracts <booking-id>"); ok {
			agreement, waiver, all := s.booking.ContractURLs(id)
			fmt.Printf("rental agreement: %s\nliability waiver: %s\ncombined: %s\n", agreement, waiver, all)
		}

	case "messages":
		if err := s.messaging.LoadConversations(viewCtx); err != nil {
			fmt.Printf("messages: %v\n", err)
			return
		}
		for i, c := range s.messaging.Conversations() {
			fmt.Printf("[%d] %s re %s (%d unread): %s\n", i, c.PartnerName, c.EquipmentName, c.UnreadCount, c.LastMessage)
		}

	case "open":
		s.cmdOpenConversation(viewCtx, args)

	case "send":
		text := strings.TrimSpace(strings.TrimPrefix(line, "send"))
		if text == "" {
			fmt.Println("usage: send <message>")
			return
		}
		s.messaging.Send(viewCtx, text)

	case "unread":
		fmt.Printf("%d unread\n", s.messaging.Unread())

	case "myequip":
		if err := s.listing.LoadMyEquipment(viewCtx); err != nil {
			fmt.Printf("myequip: %v\n", err)
			return
		}
		for _, item := range s.listing.MyEquipment() {
			fmt.Printf("#%d %s [%s] $%.2f/day status=%s\n",
				item.ID, item.Name, item.Category, item.DailyPrice, item.ApprovalStatus)
		}

	case "equip-new":
		s.cmdEquipForm(line, false)

	case "equip-edit":
		s.cmdEquipEdit(args)

	case "equip-cancel":
		s.listing.CancelEdit()

	case "equip-save":
		s.cmdEquipSave(viewCtx)

	case "img-add":
		s.cmdImgAdd(args)

	case "img-remove":
		if index, ok := intArg(args, 0, "usage: img-remove <index>"); ok {
			if err := s.listing.Batch().Remove(index); err != nil {
				fmt.Printf("img-remove: %v\n", err)
			}
		}

	case "imgs":
		for i, handle := range s.listing.Batch().PreviewHandles() {
			fmt.Printf("[%d] %s\n", i, handle)
		}

	case "delete-equip":
		if id, ok := intArg(args, 0, "usage: delete-equip <id>"); ok {
			s.listing.Delete(viewCtx, id)
		}

	case "boost-pricing":
		pricing, err := s.listing.BoostPricing(viewCtx)
		if err != nil {
			return
		}
		for boostType, option := range pricing {
			fmt.Printf("%s: %s $%.2f\n", boostType, option.Name, option.Price)
		}

	case "boost":
		s.cmdBoost(viewCtx, args)

	case "profile-update":
		s.cmdProfileUpdate(viewCtx, line)

	case "avatar":
		s.cmdAvatar(args)

	case "verify":
		url, err := s.profile.StartVerification(viewCtx)
		if err == nil {
			fmt.Printf("open in your browser: %s\n", url)
		}

	case "verify-status":
		status, err := s.profile.VerificationStatus(viewCtx)
		if err != nil {
			fmt.Printf("verify-status: %v\n", err)
			return
		}
		fmt.Printf("identity verification: %s\n", status.Status)

	case "delete-account":
		if err := s.profile.DeleteAccount(viewCtx); err == nil {
			s.controller.SwitchTo(app.ViewBrowse)
		}

	case "admin-tab":
		s.cmdAdminTab(viewCtx, args)

	case "admin-search":
		s.cmdAdminSearch(viewCtx, line)

	case "admin-equip-filter":
		s.cmdAdminEquipFilter(viewCtx, args, line)

	case "ban":
		if id, ok := intArg(args, 0, "usage: ban <user-id>"); ok {
			s.admin.BanUser(viewCtx, id)
		}

	case "unban":
		if id, ok := intArg(args, 0, "usage: unban <user-id>"); ok {
			s.admin.UnbanUser(viewCtx, id)
		}

	case "admin-del-user":
		if id, ok := intArg(args, 0, "usage: admin-del-user <user-id>"); ok {
			s.admin.DeleteUser(viewCtx, id)
		}

	case "approve-equip":
		if id, ok := intArg(args, 0, "usage: approve-equip <id>"); ok {
			s.admin.ApproveEquipment(viewCtx, id)
		}

	case "reject-equip":
		if id, ok := intArg(args, 0, "usage: reject-equip <id>"); ok {
			s.admin.RejectEquipment(viewCtx, id)
		}

	case "admin-del-equip":
		if id, ok := intArg(args, 0, "usage: admin-del-equip <id>"); ok {
			s.admin.DeleteEquipment(viewCtx, id)
		}

	default:
		fmt.Printf("unknown command %q, try 'help'\n", command)
	}
}

func (s *shell) printItems(items []models.EquipmentItem) {
	if len(items) == 0 {
		fmt.Println("no equipment matches")
		return
	}
	for _, item := range items {
		fmt.Printf("#%d %s [%s] $%.2f/day @ %s\n", item.ID, item.Name, item.Category, item.DailyPrice, item.Location)
	}
}

func (s *shell) cmdBook(args []string) {
	id, ok := intArg(args, 0, "usage: book <equipment-id>")
	if !ok {
		return
	}
	var target *models.EquipmentItem
	items := s.catalog.Items()
	for i := range items {
		if items[i].ID == id {
			target = &items[i]
			break
		}
	}
	if target == nil {
		fmt.Printf("equipment #%d is not in the current catalog\n", id)
		return
	}
	if err := s.booking.Start(target); err != nil {
		fmt.Printf("book: %v\n", err)
		if err == booking.ErrAuthRequired {
			s.controller.SwitchTo(app.ViewAuth)
		}
		return
	}
	fmt.Printf("booking %s, now run: dates <start> <end>\n", target.Name)
}

func (s *shell) cmdBookingStatus(ctx context.Context, command string, args []string) {
	id, ok := intArg(args, 0, "usage: "+command+" <booking-id>")
	if !ok {
		return
	}
	status := map[string]models.BookingStatus{
		"approve":  models.BookingConfirmed,
		"decline":  models.BookingCancelled,
		"complete": models.BookingCompleted,
	}[command]
	s.booking.UpdateStatus(ctx, id, status)
}

func (s *shell) cmdReview(ctx context.Context, args []string, line string) {
	if len(args) < 3 {
		fmt.Println("usage: review <booking-id> <equipment-rating> <owner-rating> [comment]")
		return
	}
	bookingID, err1 := strconv.Atoi(args[0])
	equipRating, err2 := strconv.Atoi(args[1])
	ownerRating, err3 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Println("review: ids and ratings must be numbers")
		return
	}
	comment := strings.Join(args[3:], " ")
	s.booking.SubmitReview(ctx, bookingID, api.ReviewPayload{
		EquipmentRating: equipRating,
		OwnerRating:     ownerRating,
		EquipmentReview: comment,
		OwnerReview:     comment,
	})
}

func (s *shell) cmdOpenConversation(ctx context.Context, args []string) {
	index, ok := intArg(args, 0, "usage: open <conversation-index>")
	if !ok {
		return
	}
	conversations := s.messaging.Conversations()
	if index < 0 || index >= len(conversations) {
		fmt.Println("open: no such conversation")
		return
	}
	if err := s.messaging.Open(ctx, conversations[index]); err != nil {
		return
	}
	for _, msg := range s.messaging.Thread() {
		fmt.Printf("%s: %s\n", msg.SenderName, msg.Message)
	}
}

// cmdEquipForm parses "equip-new name|category|price/day|deposit|location|description".
func (s *shell) cmdEquipForm(line string, editing bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "equip-new"))
	parts := strings.Split(rest, "|")
	if len(parts) != 6 {
		fmt.Println("usage: equip-new name|category|daily-price|deposit|location|description")
		return
	}
	daily, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		fmt.Println("equip-new: daily price must be a number")
		return
	}
	deposit, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		fmt.Println("equip-new: deposit must be a number")
		return
	}
	form := s.listing.Form()
	form.Name = strings.TrimSpace(parts[0])
	form.Category = models.Category(strings.TrimSpace(parts[1]))
	form.DailyPrice = &daily
	form.SecurityDeposit = &deposit
	form.Location = strings.TrimSpace(parts[4])
	form.Description = strings.TrimSpace(parts[5])
	if form.CapacitySpec == "" {
		form.CapacitySpec = "1 person"
	}
	s.listing.SetForm(form)
	fmt.Println("form staged, add images with img-add then run equip-save")
}

func (s *shell) cmdEquipEdit(args []string) {
	id, ok := intArg(args, 0, "usage: equip-edit <id>")
	if !ok {
		return
	}
	for _, item := range s.listing.MyEquipment() {
		if item.ID == id {
			item := item
			s.listing.BeginEdit(&item)
			fmt.Printf("editing #%d, adjust with equip-new syntax then equip-save\n", id)
			return
		}
	}
	fmt.Printf("equipment #%d is not in your list, run myequip first\n", id)
}

func (s *shell) cmdEquipSave(ctx context.Context) {
	var err error
	if s.listing.Editing() != nil {
		err = s.listing.Update(ctx)
	} else {
		err = s.listing.Create(ctx)
	}
	if err != nil {
		fmt.Printf("equip-save: %v\n", err)
	}
}

func (s *shell) cmdImgAdd(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: img-add <path> [path...]")
		return
	}
	files := make([]listing.SelectedFile, 0, len(args))
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("img-add: %v\n", err)
			return
		}
		files = append(files, listing.SelectedFile{
			Filename: filepath.Base(path),
			MIMEType: mime.TypeByExtension(filepath.Ext(path)),
			Content:  content,
		})
	}
	if err := s.listing.Batch().Add(files); err != nil {
		fmt.Printf("img-add: %v\n", err)
		return
	}
	fmt.Printf("%d image(s) staged\n", s.listing.Batch().Len())
}

func (s *shell) cmdBoost(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: boost <equipment-id> <boost_7_days|boost_30_days|homepage_featured>")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("boost: equipment id must be a number")
		return
	}
	checkoutURL, err := s.listing.PurchaseBoost(ctx, id, models.BoostType(args[1]))
	if err != nil {
		return
	}
	fmt.Printf("complete the purchase in your browser: %s\n", checkoutURL)
}

// cmdProfileUpdate parses "profile-update first|last|email|phone|bio".
func (s *shell) cmdProfileUpdate(ctx context.Context, line string) {
	user := s.session.CurrentUser()
	if user == nil {
		fmt.Println("profile-update: sign in first")
		return
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "profile-update"))
	parts := strings.Split(rest, "|")
	if len(parts) != 5 {
		fmt.Println("usage: profile-update first|last|email|phone|bio")
		return
	}
	form := profile.FormFromUser(user)
	form.FirstName = strings.TrimSpace(parts[0])
	form.LastName = strings.TrimSpace(parts[1])
	form.Email = strings.TrimSpace(parts[2])
	form.Phone = strings.TrimSpace(parts[3])
	form.Bio = strings.TrimSpace(parts[4])
	s.profile.Update(ctx, form)
}

func (s *shell) cmdAvatar(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: avatar <path>")
		return
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("avatar: %v\n", err)
		return
	}
	mimeType := mime.TypeByExtension(filepath.Ext(args[0]))
	if err := s.profile.SelectImage(filepath.Base(args[0]), mimeType, content); err == nil {
		fmt.Println("avatar staged, it uploads with the next profile-update")
	}
}

func (s *shell) cmdAdminTab(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: admin-tab <overview|users|equipment|bookings>")
		return
	}
	tab, ok := map[string]admin.Tab{
		"overview":  admin.TabOverview,
		"users":     admin.TabUsers,
		"equipment": admin.TabEquipment,
		"bookings":  admin.TabBookings,
	}[args[0]]
	if !ok {
		fmt.Printf("unknown tab %q\n", args[0])
		return
	}
	if err := s.admin.SelectTab(ctx, tab); err != nil {
		fmt.Printf("admin-tab: %v\n", err)
		return
	}
	s.printAdminTab(tab)
}

func (s *shell) cmdAdminSearch(ctx context.Context, line string) {
	search := strings.TrimSpace(strings.TrimPrefix(line, "admin-search"))
	s.admin.SetUserSearch(search)
	if err := s.admin.SelectTab(ctx, admin.TabUsers); err != nil {
		fmt.Printf("admin-search: %v\n", err)
		return
	}
	s.printAdminTab(admin.TabUsers)
}

func (s *shell) cmdAdminEquipFilter(ctx context.Context, args []string, line string) {
	if len(args) == 0 {
		fmt.Println("usage: admin-equip-filter <pending|approved|rejected> [search]")
		return
	}
	search := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(line, "admin-equip-filter")), args[0]))
	s.admin.SetEquipmentFilter(models.ApprovalStatus(args[0]), search)
	if err := s.admin.SelectTab(ctx, admin.TabEquipment); err != nil {
		fmt.Printf("admin-equip-filter: %v\n", err)
		return
	}
	s.printAdminTab(admin.TabEquipment)
}

func (s *shell) printAdminTab(tab admin.Tab) {
	switch tab {
	case admin.TabOverview:
		stats, _ := s.admin.Stats()
		if stats != nil {
			fmt.Printf("users=%d equipment=%d bookings=%d pending=%d banned=%d\n",
				stats.TotalUsers, stats.TotalEquipment, stats.TotalBookings, stats.PendingEquipment, stats.BannedUsers)
		}
	case admin.TabUsers:
		users, page := s.admin.Users()
		for _, u := range users {
			fmt.Printf("#%d %s <%s> banned=%v\n", u.ID, u.DisplayName(), u.Email, u.IsBanned)
		}
		printPage(page)
	case admin.TabEquipment:
		equipment, page := s.admin.Equipment()
		for _, e := range equipment {
			fmt.Printf("#%d %s [%s] status=%s\n", e.ID, e.Name, e.Category, e.ApprovalStatus)
		}
		printPage(page)
	case admin.TabBookings:
		bookings, page := s.admin.Bookings()
		for _, b := range bookings {
			fmt.Printf("#%d equipment=%d %s..%s status=%s\n", b.ID, b.EquipmentID, b.StartDate, b.EndDate, b.Status)
		}
		printPage(page)
	}
}

func printPage(page *models.Page) {
	if page != nil {
		fmt.Printf("page %d/%d (%d total)\n", page.CurrentPage, page.Pages, page.Total)
	}
}

func intArg(args []string, index int, usage string) (int, bool) {
	if len(args) <= index {
		fmt.Println(usage)
		return 0, false
	}
	value, err := strconv.Atoi(args[index])
	if err != nil {
		fmt.Println(usage)
		return 0, false
	}
	return value, true
}

func parseView(name string) (app.View, bool) {
	views := map[string]app.View{
		"home":         app.ViewHome,
		"browse":       app.ViewBrowse,
		"bookings":     app.ViewBookings,
		"messages":     app.ViewMessages,
		"my-equipment": app.ViewMyEquipment,
		"profile":      app.ViewProfile,
		"pricing":      app.ViewPricing,
		"admin":        app.ViewAdmin,
		"auth":         app.ViewAuth,
		"terms":        app.ViewTerms,
		"privacy":      app.ViewPrivacy,
	}
	view, ok := views[name]
	return view, ok
}

func printHelp() {
	fmt.Print(`session:   login, register, logout, whoami, forgot, resetpw
catalog:   view, category, search, location, locations, items
booking:   book, dates, checkout, pay, cancel-booking, bookings,
           approve, decline, complete, refund, review, contracts
messages:  messages, open, send, unread
listings:  myequip, equip-new, equip-edit, equip-cancel, equip-save,
           img-add, img-remove, imgs, delete-equip, boost-pricing, boost
profile:   profile-update, avatar, verify, verify-status, delete-account
admin:     admin-tab, admin-search, admin-equip-filter, ban, unban,
           admin-del-user, approve-equip, reject-equip, admin-del-equip
misc:      help, quit
`)
}
