package codegen

// Setup snippets seeded into every generated script. They are emitted
// verbatim and must keep their anchor definitions.

const (
	mobileAnchor = "def setup_driver("
	webAnchor    = "def run(playwright"
)

const mobileSetupTemplate = `
import time
import random
import subprocess
from appium import webdriver
from appium.options.android import UiAutomator2Options
from appium.webdriver.common.appiumby import AppiumBy
from selenium.webdriver.support.ui import WebDriverWait
from selenium.webdriver.support import expected_conditions as EC
from selenium.common.exceptions import TimeoutException, StaleElementReferenceException

def setup_driver(app_package, app_activity):
    """Initializes and returns a robust Appium driver."""
    try:
        print("Setting up Appium driver...")
        options = UiAutomator2Options()
        options.platform_name = 'Android'
        options.automation_name = 'UiAutomator2'
        options.app_package = app_package
        options.app_activity = app_activity
        options.no_reset = False
        options.full_reset = False
        options.new_command_timeout = 300
        options.auto_grant_permissions = True
        
        driver = webdriver.Remote("http://127.0.0.1:4723", options=options)
        print("✓ Driver is ready.")
        return driver
    except Exception as e:
        print(f"✗ Driver setup failed: {e}")
        return None
`

const webSetupTemplate = `
from playwright.sync_api import sync_playwright, Playwright, expect
import time

def run(playwright: Playwright) -> None:
    """Main function to run the web automation script."""
    print("Setting up browser...")
    browser = playwright.chromium.launch(headless=False)
    context = browser.new_context(
        user_agent='Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36'
    )
    page = context.new_page()
    page.set_default_timeout(60000)
    print("✓ Browser is ready.")
`
