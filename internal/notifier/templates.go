package notifier

import (
	"html/template"
	"strconv"
)

// Brand is the identity block embedded in every transactional email, loaded
// from configuration.
type Brand struct {
	Name          string
	PickupAddress string
	PickupHours   string
	BankName      string
	BankCLABE     string
	BankHolder    string
	ContactPhone  string
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return "$" + strconv.FormatFloat(v, 'f', -1, 64)
	},
}

// confirmationTemplate is the order-received email. The payment block
// switches on payment method and the delivery block on fulfillment.
var confirmationTemplate = template.Must(template.New("confirmation").Funcs(templateFuncs).Parse(`
<div style="background-color:#fdfbf7;padding:20px;font-family:sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:white;border-radius:12px;overflow:hidden;">
    <div style="background:#4A3728;padding:40px 20px;text-align:center;">
      <h1 style="color:white;margin:0;letter-spacing:4px;text-transform:uppercase;">{{.Brand.Name}}</h1>
    </div>
    <div style="padding:30px;">
      <h2 style="color:#4A3728;margin-top:0;">¡Hola {{.Order.Customer.Name}}!</h2>
      <p style="color:#6b7280;">Hemos recibido tu pedido y ya estamos preparando todo.</p>
      <table style="width:100%;border-collapse:collapse;">
        {{range .Order.LineItems}}
        <tr>
          <td style="padding:12px;border-bottom:1px solid #f2e7d5;color:#4A3728;">
            <strong>{{.Quantity}}x {{.ProductName}}</strong>
            {{if .ExtrasText}}<br><span style="font-size:11px;color:#9c6644;">{{.ExtrasText}}</span>{{end}}
          </td>
          <td style="padding:12px;border-bottom:1px solid #f2e7d5;text-align:right;color:#4A3728;font-weight:bold;">{{money .Subtotal}}</td>
        </tr>
        {{end}}
        <tr>
          <td style="padding:12px;font-weight:bold;color:#4A3728;">Total</td>
          <td style="padding:12px;font-weight:bold;color:#4A3728;text-align:right;">{{money .Order.Total}}</td>
        </tr>
      </table>

      {{if .Delivery}}
      <p style="color:#4A3728;"><strong>Método:</strong> Envío a domicilio</p>
      <p style="color:#4A3728;"><strong>Dirección:</strong> {{.Order.Customer.Address}}</p>
      {{else}}
      <p style="color:#4A3728;"><strong>Método:</strong> Recoger</p>
      <div style="color:#9c6644;background:#faf8f5;padding:10px;border-radius:8px;border:1px dashed #d4a373;">
        <p style="margin:0;">Punto de Entrega: <strong>{{.Brand.PickupAddress}}</strong></p>
        <p style="margin:5px 0 0;">Horario: <strong>{{.Brand.PickupHours}}</strong></p>
      </div>
      {{end}}

      {{if .Transfer}}
      <div style="margin-top:30px;border:2px solid #820AD1;border-radius:12px;padding:25px;text-align:center;">
        <h3 style="color:#820AD1;margin:0 0 15px;">Datos para Transferencia</h3>
        <p style="font-weight:bold;">Banco: {{.Brand.BankName}}</p>
        <p style="font-weight:bold;">CLABE: {{.Brand.BankCLABE}}</p>
        <p>Beneficiaria: {{.Brand.BankHolder}}</p>
        <p style="background:#820AD1;color:white;padding:10px;border-radius:8px;">Concepto: {{.Reference}}</p>
        <p style="font-size:11px;color:#6b7280;">Por favor, envía tu comprobante por WhatsApp.</p>
      </div>
      {{else}}
      <div style="margin-top:30px;padding:20px;background-color:#F0FDF4;border:1px solid #BBF7D0;border-radius:12px;text-align:center;">
        <h3 style="color:#166534;">Pago Contra Entrega</h3>
        <p style="color:#15803D;">El pago se realizará en efectivo al recibir tu pedido.</p>
      </div>
      {{end}}

      <p style="color:#9ca3af;font-size:12px;text-align:center;margin-top:40px;">Si tienes dudas, contáctanos por WhatsApp al {{.Brand.ContactPhone}}</p>
    </div>
  </div>
</div>
`))

// thankYouTemplate is the review-request email sent once when an order is
// completed.
var thankYouTemplate = template.Must(template.New("thankyou").Funcs(templateFuncs).Parse(`
<div style="background-color:#fdfbf7;padding:20px;font-family:sans-serif;">
  <div style="max-width:600px;margin:0 auto;background:white;border-radius:12px;overflow:hidden;">
    <div style="background:#4A3728;padding:40px 20px;text-align:center;">
      <h1 style="color:white;margin:0;letter-spacing:4px;text-transform:uppercase;">{{.Brand.Name}}</h1>
    </div>
    <div style="padding:40px;text-align:center;">
      <h2 style="color:#4A3728;">¡Tu pedido ha sido entregado!</h2>
      <p style="color:#6b7280;">Muchas gracias por tu compra, <strong>{{.Order.Customer.Name}}</strong>.<br>
      Esperamos que cada bocado sea especial.</p>
      <div style="margin:40px 0;padding:30px;border:1px dashed #f2e7d5;border-radius:15px;">
        <h3 style="color:#4A3728;">¿Te gustó nuestro pan?</h3>
        <p style="color:#9c6644;font-size:14px;">Tu opinión nos ayuda a seguir horneando con amor.</p>
      </div>
      <p style="color:#4A3728;font-size:18px;">¡Vuelve pronto!</p>
    </div>
  </div>
</div>
`))
