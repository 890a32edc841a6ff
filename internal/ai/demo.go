// internal/ai/demo.go
package ai

// Canned responses served when no API key is configured, so the AI surfaces
// stay explorable in demo deployments.

const demoPrediction = `Based on the Kolar Road micro-market in Bhopal, this investment shows strong fundamentals.

Invested: ₹75,00,000 for an 1800 sqft residential plot (₹4,167/sqft at booking). Current comparable rate in the Kolar Road corridor stands at ₹3,800/sqft for under-construction stock, with registered plots commanding a 12-15% premium on possession.

At 55% construction progress and RERA registration P4500012345 in good standing, projected value at possession (December 2026) ranges ₹88,00,000 to ₹96,00,000 — an unrealised gain of 17-28%. That implies an IRR of 9.8% to 13.4% over the holding period, ahead of the Bhopal residential average of 8.1%.

Key drivers: the SAGE International School catchment keeps end-user demand firm, and the Kolar Road widening project (completion mid-2026) should compress the discount to central Bhopal rates.

Risks: possession slippage beyond Q1 2027 would drag IRR below 9%; monitor quarterly RERA filings.

Confidence: MODERATE-HIGH (72%). The micro-market has shown consistent 6-8% annual appreciation over three years, and the promoter's delivery track record supports the timeline.`

const demoUpdate = `Construction at ShivaOS Skyline has reached 68% overall completion, keeping us firmly on track for March 2026 possession.

This month the team completed structural work through the 22nd floor, with slab casting for floors 23-24 underway. MEP rough-ins are progressing through the tower's lower half, and the double-height lobby's stonework has begun.

Next milestone: structural topping-out at floor 28, targeted for the end of next quarter. Facade glazing follows immediately after, beginning on the south elevation.

Quality remains our first commitment — all concrete pours this period passed third-party cube testing, and the project's RERA filings are current with a 94 compliance score.

Thank you for your continued trust. We look forward to sharing topping-out photographs in the next update.`

const demoClassification = `{"documentType":"PAYMENT_RECEIPT","confidence":0.93,"extractedData":{"amount":"₹5,00,000","date":"2026-01-12","unitNumber":"A-1204","payerName":"Priya Nair","reraReference":"P02400001234","mode":"NEFT"}}`
