package services

import (
	"fmt"

	"paynowbot/models"

	"github.com/slack-go/slack"
)

func newPlainTextBlock(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

// BuildSaleModalView builds the sale entry form. The originating channel id
// travels in PrivateMetadata so the result can be posted back to it.
func BuildSaleModalView(provider models.PaymentProvider, privateMetadata string) slack.ModalViewRequest {
	title := "PayNow Sale"
	if provider == models.ProviderStripe {
		title = "Card Sale"
	}
	modalTitle := newPlainTextBlock(title)
	submitText := newPlainTextBlock("Create QR")
	if provider == models.ProviderStripe {
		submitText = newPlainTextBlock("Create Link")
	}
	closeText := newPlainTextBlock("Cancel")

	amountLabel := newPlainTextBlock("Amount (SGD)")
	amountPlaceholder := newPlainTextBlock("e.g., 19.90")
	amountElement := slack.NewPlainTextInputBlockElement(amountPlaceholder, "amount_input")
	amountBlock := slack.NewInputBlock("amount_block", amountLabel, nil, amountElement)
	amountBlock.Optional = false

	operatorLabel := newPlainTextBlock("Operator")
	operatorPlaceholder := newPlainTextBlock("Staff member ringing up the sale")
	operatorElement := slack.NewPlainTextInputBlockElement(operatorPlaceholder, "operator_input")
	operatorBlock := slack.NewInputBlock("operator_block", operatorLabel, nil, operatorElement)
	operatorBlock.Optional = true

	customerLabel := newPlainTextBlock("Customer / Table")
	customerPlaceholder := newPlainTextBlock("e.g., Table 5")
	customerHint := newPlainTextBlock("Shows up in the payment reference.")
	customerElement := slack.NewPlainTextInputBlockElement(customerPlaceholder, "customer_input")
	customerBlock := slack.NewInputBlock("customer_block", customerLabel, customerHint, customerElement)
	customerBlock.Optional = false

	companyLabel := newPlainTextBlock("Company")
	companyPlaceholder := newPlainTextBlock("Select venue")
	companyOpts := []*slack.OptionBlockObject{
		slack.NewOptionBlockObject("Lunar", newPlainTextBlock("Lunar"), nil),
		slack.NewOptionBlockObject("Wave", newPlainTextBlock("Wave"), nil),
		slack.NewOptionBlockObject("Ion", newPlainTextBlock("Ion"), nil),
		slack.NewOptionBlockObject("101", newPlainTextBlock("101"), nil),
	}
	companyElement := slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, companyPlaceholder, "company_select", companyOpts...)
	companyElement.InitialOption = companyOpts[0]
	companyBlock := slack.NewInputBlock("company_block", companyLabel, nil, companyElement)
	companyBlock.Optional = true

	allBlocks := []slack.Block{amountBlock, operatorBlock, customerBlock, companyBlock}

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		Title:           modalTitle,
		Submit:          submitText,
		Close:           closeText,
		CallbackID:      fmt.Sprintf("sale_modal_%s", provider),
		ClearOnClose:    true,
		NotifyOnClose:   false,
		Blocks:          slack.Blocks{BlockSet: allBlocks},
		PrivateMetadata: privateMetadata,
	}
}
