package base

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

const chromeDriverPath = "/usr/local/bin/chromedriver"

// FetchSelenium loads the page in a full Chrome instance driven over
// WebDriver. Last resort: slowest strategy but hardest to fingerprint.
func (f *Fetcher) FetchSelenium(url string) (*goquery.Document, error) {
	port, err := driverPorts().acquire()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}
	defer driverPorts().release(port)

	service, err := selenium.NewChromeDriverService(chromeDriverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %v", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
			"--disable-extensions",
			"--disable-gpu",
			"--window-size=1920,1080",
			fmt.Sprintf("--user-agent=%s", userAgent),
		},
		ExcludeSwitches: []string{"enable-automation"},
		Prefs: map[string]interface{}{
			"profile.default_content_setting_values.notifications": 2,
		},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %v", err)
	}
	defer driver.Quit()

	maskScript := `
        Object.defineProperty(navigator, 'webdriver', {get: () => undefined});
        window.chrome = {runtime: {}};
        delete window.cdc_adoQpoasnfa76pfcZLmcfl_Array;
        delete window.cdc_adoQpoasnfa76pfcZLmcfl_Promise;
        delete window.cdc_adoQpoasnfa76pfcZLmcfl_Symbol;
    `

	driver.SetPageLoadTimeout(60 * time.Second)

	if err := driver.Get(url); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}

	driver.ExecuteScript(maskScript, nil)

	time.Sleep(2 * time.Second)
	scrollScript := `
        window.scrollTo({
            top: Math.floor(Math.random() * document.body.scrollHeight / 2),
            behavior: 'smooth'
        });
    `
	driver.ExecuteScript(scrollScript, nil)
	time.Sleep(2 * time.Second)

	html, err := driver.PageSource()
	if err != nil {
		return nil, fmt.Errorf("page source error: %w", err)
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
