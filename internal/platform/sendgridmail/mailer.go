package sendgridmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/dreamdecode/backend/internal/app/service/notify"
	"github.com/dreamdecode/backend/pkg/config"
	"github.com/dreamdecode/backend/pkg/types"
)

type Mailer struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	client *sendgrid.Client
}

func NewMailer(cfg *config.Config, log *zap.SugaredLogger) notify.Mailer {
	return &Mailer{cfg: cfg, log: log, client: sendgrid.NewSendClient(cfg.Sendgrid.APIKey)}
}

func (m *Mailer) SendDreamReport(ctx context.Context, to, name string, report *types.DreamReport, pdf []byte, referralCode string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail("DreamDecode", m.cfg.Sendgrid.FromEmail),
		"Your Biblical Dream Interpretation Has Arrived",
		mail.NewEmail(name, to),
		"Your dream revelation is attached.",
		reportHTML(name, report, referralCode),
	)

	if len(pdf) > 0 {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(pdf))
		att.SetType("application/pdf")
		att.SetFilename(fmt.Sprintf("dream-revelation-%s.pdf", referralCode))
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}

	return m.send(ctx, msg)
}

func (m *Mailer) SendReferrerNotice(ctx context.Context, to, name, buyerName string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail("DreamDecode", m.cfg.Sendgrid.FromEmail),
		"Someone Used Your DreamDecode Blessing Code!",
		mail.NewEmail(name, to),
		fmt.Sprintf("%s has used your blessing code.", buyerName),
		referrerNoticeHTML(name, buyerName),
	)
	return m.send(ctx, msg)
}

func (m *Mailer) send(ctx context.Context, msg *mail.SGMailV3) error {
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status=%d body=%s", resp.StatusCode, resp.Body)
	}
	m.log.Infow("email accepted", "status", resp.StatusCode)
	return nil
}

func reportHTML(name string, report *types.DreamReport, referralCode string) string {
	interpretations := lo.Map(report.Interpretations, func(i types.Interpretation, _ int) string {
		return fmt.Sprintf("<h3>%s</h3><p>%s</p>", i.Title, i.Meaning)
	})

	scriptureHTML := ""
	if report.Scripture.Reference != "" {
		scriptureHTML = fmt.Sprintf(`
    <h3>Scriptural Foundation</h3>
    <p><i>%s</i></p>
    <p>%s</p>
    <p>%s</p>`, report.Scripture.Reference, report.Scripture.Text, report.Scripture.Context)
	}

	prayerHTML := ""
	if report.Prayer != "" {
		prayerHTML = fmt.Sprintf("<h3>Personalized Prayer</h3><p>%s</p>", report.Prayer)
	}

	return fmt.Sprintf(`
    <div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; color: #2C3E50;">
        <h2 style="color: #D4AF37; border-bottom: 2px solid #D4AF37; padding-bottom: 10px;">
            Your Dream Revelation
        </h2>
        <p>Dear %s,</p>
        <p>As Joseph interpreted dreams in Egypt, and Daniel in Babylon, here is your divine revelation:</p>

        %s
        %s
        %s

        <div style="background-color: #F8F9FA; padding: 20px; border-left: 4px solid #D4AF37; margin-top: 30px;">
            <h3 style="margin-top: 0; color: #2C3E50;">Share the Blessing</h3>
            <p>Your personal blessing code: <strong style="font-size: 20px; color: #D4AF37;">%s</strong></p>
            <p>Share this with friends and family. They receive 50%% off, and you receive heavenly rewards.</p>
        </div>

        <p style="font-size: 12px; color: #666; margin-top: 30px;">
            PDF attached for your records. Keep this revelation in a sacred place.
        </p>
    </div>`,
		name, strings.Join(interpretations, ""), scriptureHTML, prayerHTML, referralCode)
}

func referrerNoticeHTML(name, buyerName string) string {
	return fmt.Sprintf(`
    <div style="font-family: Georgia, serif; max-width: 600px;">
        <h2 style="color: #D4AF37;">Blessing Multiplied!</h2>
        <p>Dear %s,</p>
        <p>Wonderful news! <strong>%s</strong> has used your blessing code to receive their dream interpretation.</p>
        <p>As Scripture says: "The one who blesses others is abundantly blessed" (Proverbs 11:25).</p>
        <p>Your referral count has increased. Thank you for spreading the light.</p>
    </div>`, name, buyerName)
}
